package dto

import (
	"github.com/shopspring/decimal"
)

// RegistrarAcopioRequest records one daily raw-milk delivery.
type RegistrarAcopioRequest struct {
	Fecha       string          `json:"fecha" validate:"required"`
	ProveedorID string          `json:"proveedor_id" validate:"required"`
	Litros      decimal.Decimal `json:"litros" validate:"gt=0"`
	PrecioLitro decimal.Decimal `json:"precio_litro" validate:"gte=0"`
}

// AcopioFilter narrows delivery listings. All fields optional.
type AcopioFilter struct {
	ProveedorID string `form:"proveedor_id"`
	Desde       string `form:"desde"`
	Hasta       string `form:"hasta"`
}
