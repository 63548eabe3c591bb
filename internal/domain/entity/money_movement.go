package entity

import "github.com/shopspring/decimal"

// MoneyMovement movimiento de dinero (ingreso/egreso sobre una cuenta).
// Solo lectura desde el API: los movimientos los genera el flujo de ventas.
type MoneyMovement struct {
	ID          string
	Client      string
	User        string
	Type        string
	Account     string
	Sum         decimal.Decimal
	Date        int64
	Description string
	Created     int64
	Updated     int64
}
