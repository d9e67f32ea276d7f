package service

import (
	"context"
	"errors"
	"sort"

	"acopiapp/internal/dto"
	"acopiapp/internal/ledger"
	"acopiapp/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrVentaNoEncontrada = errors.New("venta no encontrada")

type VentaStore interface {
	Ventas() []model.Venta
	ReplaceVentas([]model.Venta) error
	Clientes() []model.Cliente
}

type VentaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*model.Venta, error)
	Listar(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, error)
	Eliminar(ctx context.Context, id string) error

	RegistrarAbono(ctx context.Context, ventaID string, req dto.AbonoRequest) (*model.Venta, error)
	AbonoGlobal(ctx context.Context, clienteID string, req dto.AbonoGlobalRequest) error
	CancelarCuenta(ctx context.Context, clienteID string, req dto.CancelarCuentaRequest) (*dto.CancelarCuentaResponse, error)
	Deuda(ctx context.Context, clienteID string) (*dto.DeudaClienteResponse, error)
	ResumenDeudas(ctx context.Context) []dto.DeudaClienteResponse
	EstadoCuenta(ctx context.Context, clienteID string, desde *model.Fecha) ([]ledger.MovimientoCuenta, error)
}

type ventaService struct {
	store VentaStore
	// hoy is injectable so tests can fix the clock.
	hoy func() model.Fecha
}

func NewVentaService(store VentaStore) VentaService {
	return &ventaService{store: store, hoy: model.HoyFecha}
}

// NewVentaServiceConReloj builds a VentaService with a fixed clock for tests.
func NewVentaServiceConReloj(store VentaStore, hoy func() model.Fecha) VentaService {
	return &ventaService{store: store, hoy: hoy}
}

// Registrar creates a sale. The total is frozen at creation from
// precio × cantidad × (baldes → 100 unidades). An entrega inicial, when
// given, becomes the sale's first payment, dated the sale's own fecha.
func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*model.Venta, error) {
	fecha, err := model.ParseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}

	cliente, err := s.buscarCliente(req.ClienteID)
	if err != nil {
		return nil, err
	}

	total, err := model.CalcularMontoTotal(req.Precio, req.Cantidad, req.Unidad)
	if err != nil {
		return nil, err
	}

	venta := model.Venta{
		ID:            uuid.NewString(),
		Fecha:         fecha,
		ClienteID:     cliente.ID,
		ClienteNombre: cliente.Nombre,
		Precio:        req.Precio,
		Cantidad:      req.Cantidad,
		Unidad:        req.Unidad,
		MontoTotal:    total,
		Pagos:         []model.Pago{},
	}

	if req.EntregaInicial != nil && req.EntregaInicial.IsPositive() {
		if req.EntregaInicial.GreaterThan(total) {
			return nil, errors.New("la entrega inicial excede el monto total de la venta")
		}
		venta.Pagos = append(venta.Pagos, model.Pago{Fecha: fecha, Monto: *req.EntregaInicial})
	}

	ventas := append(s.store.Ventas(), venta)
	if err := s.store.ReplaceVentas(ventas); err != nil {
		return nil, err
	}
	return &venta, nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, error) {
	var desde, hasta model.Fecha
	var err error
	if filter.Desde != "" {
		if desde, err = model.ParseFecha(filter.Desde); err != nil {
			return nil, err
		}
	}
	if filter.Hasta != "" {
		if hasta, err = model.ParseFecha(filter.Hasta); err != nil {
			return nil, err
		}
	}

	resultado := make([]model.Venta, 0)
	for _, v := range s.store.Ventas() {
		if filter.ClienteID != "" && v.ClienteID != filter.ClienteID {
			continue
		}
		if !desde.EsCero() && v.Fecha.Antes(desde) {
			continue
		}
		if !hasta.EsCero() && v.Fecha.Despues(hasta) {
			continue
		}
		resultado = append(resultado, v)
	}
	return resultado, nil
}

// Eliminar removes a sale outright. Irreversible, no cascade: payments go
// with the record.
func (s *ventaService) Eliminar(ctx context.Context, id string) error {
	ventas := s.store.Ventas()
	for i := range ventas {
		if ventas[i].ID == id {
			ventas = append(ventas[:i], ventas[i+1:]...)
			return s.store.ReplaceVentas(ventas)
		}
	}
	return ErrVentaNoEncontrada
}

func (s *ventaService) RegistrarAbono(ctx context.Context, ventaID string, req dto.AbonoRequest) (*model.Venta, error) {
	ventas := s.store.Ventas()
	for i := range ventas {
		if ventas[i].ID != ventaID {
			continue
		}
		if err := ledger.RegistrarPago(&ventas[i], req.Monto, s.hoy()); err != nil {
			return nil, err
		}
		if err := s.store.ReplaceVentas(ventas); err != nil {
			return nil, err
		}
		pagada := ventas[i]
		return &pagada, nil
	}
	return nil, ErrVentaNoEncontrada
}

// AbonoGlobal distributes one payment over the client's outstanding sales,
// oldest first, then persists the whole list.
func (s *ventaService) AbonoGlobal(ctx context.Context, clienteID string, req dto.AbonoGlobalRequest) error {
	ventas := s.store.Ventas()
	propias := indicesDeCliente(ventas, clienteID)
	if len(propias) == 0 {
		return ErrClienteNoEncontrado
	}

	sub := make([]model.Venta, len(propias))
	for i, idx := range propias {
		sub[i] = ventas[idx]
	}
	if err := ledger.AplicarAbonoGlobal(sub, req.Monto, s.hoy()); err != nil {
		return err
	}
	for i, idx := range propias {
		ventas[idx] = sub[i]
	}
	log.Info().
		Str("cliente_id", clienteID).
		Str("monto", req.Monto.StringFixed(2)).
		Msg("abono global aplicado")
	return s.store.ReplaceVentas(ventas)
}

// CancelarCuenta writes off every outstanding sale up to the cutoff date.
// Stored as plain payments: reports cannot tell a write-off from cash.
func (s *ventaService) CancelarCuenta(ctx context.Context, clienteID string, req dto.CancelarCuentaRequest) (*dto.CancelarCuentaResponse, error) {
	corte, err := model.ParseFecha(req.FechaCorte)
	if err != nil {
		return nil, err
	}

	ventas := s.store.Ventas()
	propias := indicesDeCliente(ventas, clienteID)
	if len(propias) == 0 {
		return nil, ErrClienteNoEncontrado
	}

	sub := make([]model.Venta, len(propias))
	for i, idx := range propias {
		sub[i] = ventas[idx]
	}
	saldadas := ledger.CancelarCuenta(sub, corte)
	for i, idx := range propias {
		ventas[idx] = sub[i]
	}
	if saldadas > 0 {
		if err := s.store.ReplaceVentas(ventas); err != nil {
			return nil, err
		}
		log.Info().
			Str("cliente_id", clienteID).
			Str("fecha_corte", corte.String()).
			Int("ventas_saldadas", saldadas).
			Msg("cuenta cancelada")
	}
	return &dto.CancelarCuentaResponse{VentasSaldadas: saldadas}, nil
}

func (s *ventaService) Deuda(ctx context.Context, clienteID string) (*dto.DeudaClienteResponse, error) {
	ventas, err := s.Listar(ctx, dto.VentaFilter{ClienteID: clienteID})
	if err != nil {
		return nil, err
	}
	if len(ventas) == 0 {
		if _, err := s.buscarCliente(clienteID); err != nil {
			return nil, err
		}
	}
	return s.resumenDeuda(clienteID, ventas), nil
}

// ResumenDeudas groups every sale by client and reports each aggregate debt,
// ordered by client name. Clients with no sales do not appear.
func (s *ventaService) ResumenDeudas(ctx context.Context) []dto.DeudaClienteResponse {
	porCliente := make(map[string][]model.Venta)
	for _, v := range s.store.Ventas() {
		porCliente[v.ClienteID] = append(porCliente[v.ClienteID], v)
	}

	resumen := make([]dto.DeudaClienteResponse, 0, len(porCliente))
	for clienteID, ventas := range porCliente {
		resumen = append(resumen, *s.resumenDeuda(clienteID, ventas))
	}
	sort.Slice(resumen, func(a, b int) bool {
		return resumen[a].ClienteNombre < resumen[b].ClienteNombre
	})
	return resumen
}

func (s *ventaService) EstadoCuenta(ctx context.Context, clienteID string, desde *model.Fecha) ([]ledger.MovimientoCuenta, error) {
	ventas, err := s.Listar(ctx, dto.VentaFilter{ClienteID: clienteID})
	if err != nil {
		return nil, err
	}
	if len(ventas) == 0 {
		if _, err := s.buscarCliente(clienteID); err != nil {
			return nil, err
		}
	}
	return ledger.EstadoDeCuenta(ventas, desde), nil
}

func (s *ventaService) buscarCliente(id string) (*model.Cliente, error) {
	for _, c := range s.store.Clientes() {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrClienteNoEncontrado
}

// nombreCliente prefers the live client record, falling back to the
// snapshot on the most recent sale when the client was deleted.
func (s *ventaService) nombreCliente(clienteID string, ventas []model.Venta) string {
	if c, err := s.buscarCliente(clienteID); err == nil {
		return c.Nombre
	}
	if len(ventas) > 0 {
		return ventas[len(ventas)-1].ClienteNombre
	}
	return ""
}

func (s *ventaService) resumenDeuda(clienteID string, ventas []model.Venta) *dto.DeudaClienteResponse {
	pendientes := 0
	for i := range ventas {
		if !ledger.Saldada(&ventas[i]) {
			pendientes++
		}
	}
	return &dto.DeudaClienteResponse{
		ClienteID:        clienteID,
		ClienteNombre:    s.nombreCliente(clienteID, ventas),
		Deuda:            ledger.DeudaCliente(ventas),
		VentasPendientes: pendientes,
	}
}

func indicesDeCliente(ventas []model.Venta, clienteID string) []int {
	var idx []int
	for i := range ventas {
		if ventas[i].ClienteID == clienteID {
			idx = append(idx, i)
		}
	}
	return idx
}
