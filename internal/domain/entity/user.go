package entity

// User operador del sistema.
type User struct {
	ID           string
	Client       string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Created      int64
	Updated      int64
}

// Category categoría de catálogo por inquilino.
type Category struct {
	ID     string
	Client string
	Name   string
}
