package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Movement types for the whole-milk stock.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
)

// MovimientoLeche records one replenishment or consumption of the
// whole-milk stock kept aside from production.
type MovimientoLeche struct {
	ID      string          `json:"id"`
	Fecha   Fecha           `json:"fecha"`
	Tipo    string          `json:"tipo"`
	Litros  decimal.Decimal `json:"litros"`
	Detalle string          `json:"detalle"`
}

func (m *MovimientoLeche) Validar() error {
	if m.ID == "" {
		return errors.New("movimiento sin id")
	}
	if m.Fecha.EsCero() {
		return errors.New("movimiento sin fecha")
	}
	if m.Tipo != MovimientoEntrada && m.Tipo != MovimientoSalida {
		return fmt.Errorf("movimiento %s: tipo desconocido %q", m.ID, m.Tipo)
	}
	if !m.Litros.IsPositive() {
		return fmt.Errorf("movimiento %s: litros debe ser positivo", m.ID)
	}
	return nil
}
