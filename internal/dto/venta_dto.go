package dto

import (
	"github.com/shopspring/decimal"
)

// RegistrarVentaRequest creates a sale, optionally with a down payment
// (entrega inicial) recorded with the sale's own date.
type RegistrarVentaRequest struct {
	Fecha     string          `json:"fecha" validate:"required"`
	ClienteID string          `json:"cliente_id" validate:"required"`
	Precio    decimal.Decimal `json:"precio" validate:"gt=0"`
	Cantidad  decimal.Decimal `json:"cantidad" validate:"gt=0"`
	Unidad    string          `json:"unidad" validate:"required,oneof=baldes unidades"`
	// EntregaInicial, when present and positive, must not exceed the total.
	EntregaInicial *decimal.Decimal `json:"entrega_inicial"`
}

// AbonoRequest applies a single payment to one sale, dated today.
type AbonoRequest struct {
	Monto decimal.Decimal `json:"monto" validate:"gt=0"`
}

// AbonoGlobalRequest distributes one amount across a client's outstanding
// sales, oldest first.
type AbonoGlobalRequest struct {
	Monto decimal.Decimal `json:"monto" validate:"gt=0"`
}

// CancelarCuentaRequest writes off a client's balances up to the cutoff.
type CancelarCuentaRequest struct {
	FechaCorte string `json:"fecha_corte" validate:"required"`
}

// VentaFilter narrows sale listings. All fields optional.
type VentaFilter struct {
	ClienteID string `form:"cliente_id"`
	Desde     string `form:"desde"`
	Hasta     string `form:"hasta"`
}

// DeudaClienteResponse summarizes one client's outstanding debt.
type DeudaClienteResponse struct {
	ClienteID        string          `json:"cliente_id"`
	ClienteNombre    string          `json:"cliente_nombre"`
	Deuda            decimal.Decimal `json:"deuda"`
	VentasPendientes int             `json:"ventas_pendientes"`
}

// CancelarCuentaResponse reports how many sales a write-off settled.
type CancelarCuentaResponse struct {
	VentasSaldadas int `json:"ventas_saldadas"`
}
