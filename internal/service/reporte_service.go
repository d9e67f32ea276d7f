package service

import (
	"context"
	"sort"

	"acopiapp/internal/dto"
	"acopiapp/internal/ledger"
	"acopiapp/internal/model"

	"github.com/shopspring/decimal"
)

type ReporteStore interface {
	Clientes() []model.Cliente
	Proveedores() []model.Proveedor
	Ventas() []model.Venta
	Acopios() []model.Acopio
	Producciones() []model.Produccion
	MovimientosLeche() []model.MovimientoLeche
}

type ReporteService interface {
	Semanal(ctx context.Context, fecha model.Fecha) *dto.ReporteSemanal
	Estadisticas(ctx context.Context) *dto.Estadisticas
}

type reporteService struct {
	store ReporteStore
}

func NewReporteService(store ReporteStore) ReporteService {
	return &reporteService{store: store}
}

// Semanal aggregates the Monday-start week containing fecha: deliveries per
// provider, sales and collections, production with its weighted
// transformation index, and the whole-milk stock movement of the week.
func (s *reporteService) Semanal(ctx context.Context, fecha model.Fecha) *dto.ReporteSemanal {
	desde := fecha.InicioSemana()
	hasta := desde.SumarDias(6)
	enSemana := func(f model.Fecha) bool {
		return !f.Antes(desde) && !f.Despues(hasta)
	}

	rep := &dto.ReporteSemanal{
		Desde:                desde,
		Hasta:                hasta,
		AcopioTotalLitros:    decimal.Zero,
		AcopioTotalImporte:   decimal.Zero,
		AcopioPorProveedor:   []dto.AcopioProveedorSemanal{},
		TotalVendido:         decimal.Zero,
		TotalCobrado:         decimal.Zero,
		LitrosUsados:         decimal.Zero,
		KilosProducidos:      decimal.Zero,
		IndiceTransformacion: decimal.Zero,
		LecheEntradas:        decimal.Zero,
		LecheSalidas:         decimal.Zero,
		LecheNeto:            decimal.Zero,
	}

	// Acopios, grouped by provider
	porProveedor := make(map[string]*dto.AcopioProveedorSemanal)
	for _, a := range s.store.Acopios() {
		if !enSemana(a.Fecha) {
			continue
		}
		agg, ok := porProveedor[a.ProveedorID]
		if !ok {
			agg = &dto.AcopioProveedorSemanal{
				ProveedorID:     a.ProveedorID,
				ProveedorNombre: a.ProveedorNombre,
				Litros:          decimal.Zero,
				Importe:         decimal.Zero,
			}
			porProveedor[a.ProveedorID] = agg
		}
		agg.Entregas++
		agg.Litros = agg.Litros.Add(a.Litros)
		agg.Importe = agg.Importe.Add(a.Total)
		rep.AcopioTotalLitros = rep.AcopioTotalLitros.Add(a.Litros)
		rep.AcopioTotalImporte = rep.AcopioTotalImporte.Add(a.Total)
	}
	for _, agg := range porProveedor {
		rep.AcopioPorProveedor = append(rep.AcopioPorProveedor, *agg)
	}
	sort.Slice(rep.AcopioPorProveedor, func(a, b int) bool {
		return rep.AcopioPorProveedor[a].ProveedorNombre < rep.AcopioPorProveedor[b].ProveedorNombre
	})

	// Sales registered in the week, and every payment dated in it.
	for _, v := range s.store.Ventas() {
		if enSemana(v.Fecha) {
			rep.VentasCantidad++
			rep.TotalVendido = rep.TotalVendido.Add(v.MontoTotal)
		}
		for _, p := range v.Pagos {
			if enSemana(p.Fecha) {
				rep.TotalCobrado = rep.TotalCobrado.Add(p.Monto)
			}
		}
	}

	// Production, index weighted by kilos.
	for _, p := range s.store.Producciones() {
		if !enSemana(p.Fecha) {
			continue
		}
		rep.ProduccionCorridas++
		rep.LitrosUsados = rep.LitrosUsados.Add(p.LitrosUsados)
		rep.KilosProducidos = rep.KilosProducidos.Add(p.KilosProducidos)
	}
	if rep.KilosProducidos.IsPositive() {
		rep.IndiceTransformacion = rep.LitrosUsados.Div(rep.KilosProducidos).Round(2)
	}

	for _, m := range s.store.MovimientosLeche() {
		if !enSemana(m.Fecha) {
			continue
		}
		if m.Tipo == model.MovimientoEntrada {
			rep.LecheEntradas = rep.LecheEntradas.Add(m.Litros)
		} else {
			rep.LecheSalidas = rep.LecheSalidas.Add(m.Litros)
		}
	}
	rep.LecheNeto = rep.LecheEntradas.Sub(rep.LecheSalidas)

	return rep
}

// Estadisticas are whole-history totals across every collection.
func (s *reporteService) Estadisticas(ctx context.Context) *dto.Estadisticas {
	est := &dto.Estadisticas{
		Clientes:             len(s.store.Clientes()),
		Proveedores:          len(s.store.Proveedores()),
		TotalVendido:         decimal.Zero,
		TotalCobrado:         decimal.Zero,
		DeudaTotal:           decimal.Zero,
		LitrosAcopiados:      decimal.Zero,
		KilosProducidos:      decimal.Zero,
		IndiceTransformacion: decimal.Zero,
	}

	ventas := s.store.Ventas()
	est.Ventas = len(ventas)
	for i := range ventas {
		est.TotalVendido = est.TotalVendido.Add(ventas[i].MontoTotal)
		est.TotalCobrado = est.TotalCobrado.Add(ledger.MontoPagado(&ventas[i]))
	}
	est.DeudaTotal = ledger.DeudaCliente(ventas)

	for _, a := range s.store.Acopios() {
		est.LitrosAcopiados = est.LitrosAcopiados.Add(a.Litros)
	}

	litros := decimal.Zero
	for _, p := range s.store.Producciones() {
		litros = litros.Add(p.LitrosUsados)
		est.KilosProducidos = est.KilosProducidos.Add(p.KilosProducidos)
	}
	if est.KilosProducidos.IsPositive() {
		est.IndiceTransformacion = litros.Div(est.KilosProducidos).Round(2)
	}

	est.SaldoLeche = saldoLeche(s.store.MovimientosLeche())
	return est
}
