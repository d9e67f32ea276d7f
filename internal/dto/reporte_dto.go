package dto

import (
	"acopiapp/internal/model"

	"github.com/shopspring/decimal"
)

// AcopioProveedorSemanal aggregates one provider's deliveries in the week.
type AcopioProveedorSemanal struct {
	ProveedorID     string          `json:"proveedor_id"`
	ProveedorNombre string          `json:"proveedor_nombre"`
	Entregas        int             `json:"entregas"`
	Litros          decimal.Decimal `json:"litros"`
	Importe         decimal.Decimal `json:"importe"`
}

// ReporteSemanal covers the Monday-start week containing the requested date.
type ReporteSemanal struct {
	Desde model.Fecha `json:"desde"`
	Hasta model.Fecha `json:"hasta"`

	AcopioTotalLitros  decimal.Decimal          `json:"acopio_total_litros"`
	AcopioTotalImporte decimal.Decimal          `json:"acopio_total_importe"`
	AcopioPorProveedor []AcopioProveedorSemanal `json:"acopio_por_proveedor"`

	VentasCantidad int             `json:"ventas_cantidad"`
	TotalVendido   decimal.Decimal `json:"total_vendido"`
	// TotalCobrado sums every payment dated within the week, regardless of
	// the sale's own date. Write-offs are indistinguishable from cash here.
	TotalCobrado decimal.Decimal `json:"total_cobrado"`

	ProduccionCorridas   int             `json:"produccion_corridas"`
	LitrosUsados         decimal.Decimal `json:"litros_usados"`
	KilosProducidos      decimal.Decimal `json:"kilos_producidos"`
	IndiceTransformacion decimal.Decimal `json:"indice_transformacion"`

	LecheEntradas decimal.Decimal `json:"leche_entradas"`
	LecheSalidas  decimal.Decimal `json:"leche_salidas"`
	LecheNeto     decimal.Decimal `json:"leche_neto"`
}

// Estadisticas are whole-history totals for the dashboard.
type Estadisticas struct {
	Clientes    int `json:"clientes"`
	Proveedores int `json:"proveedores"`
	Ventas      int `json:"ventas"`

	TotalVendido decimal.Decimal `json:"total_vendido"`
	TotalCobrado decimal.Decimal `json:"total_cobrado"`
	DeudaTotal   decimal.Decimal `json:"deuda_total"`

	LitrosAcopiados      decimal.Decimal `json:"litros_acopiados"`
	KilosProducidos      decimal.Decimal `json:"kilos_producidos"`
	IndiceTransformacion decimal.Decimal `json:"indice_transformacion"`
	SaldoLeche           decimal.Decimal `json:"saldo_leche"`
}
