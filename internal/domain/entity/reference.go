package entity

import "encoding/json"

// Account cuenta financiera del inquilino (caja, banco, terminal).
type Account struct {
	ID          string
	Client      string
	User        string
	App         string
	Name        string
	Type        string
	Include     bool
	UseTerminal bool
	BankDetails json.RawMessage
	Deleted     bool
	Created     int64
	Updated     int64
	CreatedMS   int64
}

// Supplier proveedor del inquilino.
type Supplier struct {
	ID          string
	Client      string
	User        string
	App         string
	Name        string
	Site        string
	Address     json.RawMessage
	Description string
	Phones      []string
	Emails      []string
	BankDetails json.RawMessage
	Deleted     bool
	Created     int64
	Updated     int64
	CreatedMS   int64
}

// Register caja registradora, asociada a una tienda.
type Register struct {
	ID        string
	Client    string
	User      string
	Store     string // _store
	App       string
	Name      string
	Type      string
	Settings  json.RawMessage
	Deleted   bool
	Created   int64
	Updated   int64
	CreatedMS int64
}

// MoneySource método de pago. La tabla es global: no lleva _client, a
// diferencia de todas sus entidades hermanas (asimetría heredada del
// sistema original, conservada a propósito).
type MoneySource struct {
	ID       string // _id
	LegacyID string // columna id, duplicada de _id en el esquema legado
	Title    string
	Type     string
	Country  string
}
