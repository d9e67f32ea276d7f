package dto

import (
	"github.com/shopspring/decimal"
)

// RegistrarMovimientoLecheRequest records a whole-milk stock movement.
// A salida beyond the current stock level is rejected.
type RegistrarMovimientoLecheRequest struct {
	Fecha   string          `json:"fecha" validate:"required"`
	Tipo    string          `json:"tipo" validate:"required,oneof=entrada salida"`
	Litros  decimal.Decimal `json:"litros" validate:"gt=0"`
	Detalle string          `json:"detalle" validate:"max=200"`
}

// SaldoLecheResponse is the current whole-milk stock level.
type SaldoLecheResponse struct {
	Litros decimal.Decimal `json:"litros"`
}
