package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Unidad values accepted on a Venta. A balde is normalized to 100 base
// units when the total is computed at creation time.
const (
	UnidadBaldes   = "baldes"
	UnidadUnidades = "unidades"

	// UnidadesPorBalde is frozen into MontoTotal at creation; changing it
	// later never alters existing sales.
	UnidadesPorBalde = 100
)

// Pago is a dated amount applied against a Venta. Append-only: individual
// payments are never edited or removed, only new ones appended.
type Pago struct {
	Fecha Fecha           `json:"fecha"`
	Monto decimal.Decimal `json:"monto"`
}

// Venta is a single sale to a client. Precio/Cantidad/Unidad/MontoTotal are
// fixed at creation; after that the record only grows its Pagos list.
// ClienteNombre is a denormalized snapshot so statements stay readable even
// if the Cliente record is later edited or deleted.
type Venta struct {
	ID            string          `json:"id"`
	Fecha         Fecha           `json:"fecha"`
	ClienteID     string          `json:"clienteId"`
	ClienteNombre string          `json:"clienteNombre"`
	Precio        decimal.Decimal `json:"precio"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	Unidad        string          `json:"unidad"`
	MontoTotal    decimal.Decimal `json:"montoTotal"`
	Pagos         []Pago          `json:"pagos"`
}

// CalcularMontoTotal computes precio × cantidad × (baldes→100, unidades→1).
func CalcularMontoTotal(precio, cantidad decimal.Decimal, unidad string) (decimal.Decimal, error) {
	switch unidad {
	case UnidadBaldes:
		return precio.Mul(cantidad).Mul(decimal.NewFromInt(UnidadesPorBalde)), nil
	case UnidadUnidades:
		return precio.Mul(cantidad), nil
	default:
		return decimal.Zero, fmt.Errorf("unidad desconocida: %q", unidad)
	}
}

func (v *Venta) Validar() error {
	if v.ID == "" {
		return errors.New("venta sin id")
	}
	if v.Fecha.EsCero() {
		return errors.New("venta sin fecha")
	}
	if v.ClienteID == "" {
		return errors.New("venta sin cliente")
	}
	if v.Unidad != UnidadBaldes && v.Unidad != UnidadUnidades {
		return fmt.Errorf("venta %s: unidad desconocida %q", v.ID, v.Unidad)
	}
	if v.MontoTotal.IsNegative() {
		return fmt.Errorf("venta %s: monto total negativo", v.ID)
	}
	for i, p := range v.Pagos {
		if p.Fecha.EsCero() {
			return fmt.Errorf("venta %s: pago %d sin fecha", v.ID, i)
		}
		if p.Monto.IsNegative() {
			return fmt.Errorf("venta %s: pago %d con monto negativo", v.ID, i)
		}
	}
	return nil
}
