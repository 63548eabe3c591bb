package entity

import "github.com/shopspring/decimal"

// Estados posibles de un turno. Solo se permite open -> closed.
const (
	ShiftStatusOpen   = "open"
	ShiftStatusClosed = "closed"
)

// Shift turno de caja de un operador: acota un conjunto de ventas entre un
// saldo de apertura y uno de cierre. A lo sumo un turno abierto por pareja
// (inquilino, operador).
type Shift struct {
	ID             string
	Client         string
	User           string
	Store          string // _store
	Register       string // _register
	App            string
	Number         int64
	Status         string
	OpenedAt       int64
	ClosedAt       int64
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Notes          string
	Created        int64
	Updated        int64
	CreatedMS      int64
}
