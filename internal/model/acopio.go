package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Acopio is one daily raw-milk delivery from a provider.
// ProveedorNombre is a snapshot, same resilience rationale as Venta.
type Acopio struct {
	ID              string          `json:"id"`
	Fecha           Fecha           `json:"fecha"`
	ProveedorID     string          `json:"proveedorId"`
	ProveedorNombre string          `json:"proveedorNombre"`
	Litros          decimal.Decimal `json:"litros"`
	PrecioLitro     decimal.Decimal `json:"precioLitro"`
	// Total = Litros × PrecioLitro, frozen at creation.
	Total decimal.Decimal `json:"total"`
}

func (a *Acopio) Validar() error {
	if a.ID == "" {
		return errors.New("acopio sin id")
	}
	if a.Fecha.EsCero() {
		return errors.New("acopio sin fecha")
	}
	if a.ProveedorID == "" {
		return errors.New("acopio sin proveedor")
	}
	if !a.Litros.IsPositive() {
		return fmt.Errorf("acopio %s: litros debe ser positivo", a.ID)
	}
	if a.PrecioLitro.IsNegative() {
		return fmt.Errorf("acopio %s: precio por litro negativo", a.ID)
	}
	return nil
}
