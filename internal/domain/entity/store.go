package entity

// Store representa una tienda, bodega, oficina o sitio de producción.
type Store struct {
	ID          string
	Client      string
	User        string
	App         string
	Name        string
	Address     string
	Description string
	Type        string // store | warehouse | office | production
	Include     bool   // incluir en reportes agregados
	Default     bool
	Deleted     bool
	Created     int64
	Updated     int64
	CreatedMS   int64
}
