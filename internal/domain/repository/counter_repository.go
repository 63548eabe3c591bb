package repository

import "context"

// Nombres de secuencia por inquilino.
const (
	CounterDocuments = "documents"
	CounterShifts    = "shifts"
)

// CounterRepository asigna números secuenciales por inquilino de forma
// atómica (upsert con incremento en una sola sentencia). Reemplaza el
// MAX(number)+1 del sistema original, que podía duplicar números bajo
// creaciones concurrentes.
type CounterRepository interface {
	Next(ctx context.Context, client, name string) (int64, error)
}
