package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Produccion is one production run turning raw milk into finished product.
type Produccion struct {
	ID              string          `json:"id"`
	Fecha           Fecha           `json:"fecha"`
	LitrosUsados    decimal.Decimal `json:"litrosUsados"`
	KilosProducidos decimal.Decimal `json:"kilosProducidos"`
}

// IndiceTransformacion is litres of raw milk consumed per kilogram produced.
// Lower is better. KilosProducidos > 0 is guaranteed by Validar.
func (p *Produccion) IndiceTransformacion() decimal.Decimal {
	return p.LitrosUsados.Div(p.KilosProducidos)
}

func (p *Produccion) Validar() error {
	if p.ID == "" {
		return errors.New("producción sin id")
	}
	if p.Fecha.EsCero() {
		return errors.New("producción sin fecha")
	}
	if !p.LitrosUsados.IsPositive() {
		return fmt.Errorf("producción %s: litros usados debe ser positivo", p.ID)
	}
	if !p.KilosProducidos.IsPositive() {
		return fmt.Errorf("producción %s: kilos producidos debe ser positivo", p.ID)
	}
	return nil
}
