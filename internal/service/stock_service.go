package service

import (
	"context"
	"errors"

	"acopiapp/internal/dto"
	"acopiapp/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrStockInsuficiente = errors.New("stock de leche insuficiente para la salida")

type StockLecheStore interface {
	MovimientosLeche() []model.MovimientoLeche
	ReplaceMovimientosLeche([]model.MovimientoLeche) error
}

// StockLecheService tracks the whole-milk stock kept aside from production:
// entradas replenish it, salidas consume it and can never push it negative.
type StockLecheService interface {
	RegistrarMovimiento(ctx context.Context, req dto.RegistrarMovimientoLecheRequest) (*model.MovimientoLeche, error)
	Listar(ctx context.Context) []model.MovimientoLeche
	Saldo(ctx context.Context) dto.SaldoLecheResponse
}

type stockLecheService struct {
	store StockLecheStore
}

func NewStockLecheService(store StockLecheStore) StockLecheService {
	return &stockLecheService{store: store}
}

func (s *stockLecheService) RegistrarMovimiento(ctx context.Context, req dto.RegistrarMovimientoLecheRequest) (*model.MovimientoLeche, error) {
	fecha, err := model.ParseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}

	movimientos := s.store.MovimientosLeche()
	if req.Tipo == model.MovimientoSalida {
		if req.Litros.GreaterThan(saldoLeche(movimientos)) {
			return nil, ErrStockInsuficiente
		}
	}

	mov := model.MovimientoLeche{
		ID:      uuid.NewString(),
		Fecha:   fecha,
		Tipo:    req.Tipo,
		Litros:  req.Litros,
		Detalle: req.Detalle,
	}
	movimientos = append(movimientos, mov)
	if err := s.store.ReplaceMovimientosLeche(movimientos); err != nil {
		return nil, err
	}
	return &mov, nil
}

func (s *stockLecheService) Listar(ctx context.Context) []model.MovimientoLeche {
	return s.store.MovimientosLeche()
}

func (s *stockLecheService) Saldo(ctx context.Context) dto.SaldoLecheResponse {
	return dto.SaldoLecheResponse{Litros: saldoLeche(s.store.MovimientosLeche())}
}

func saldoLeche(movimientos []model.MovimientoLeche) decimal.Decimal {
	saldo := decimal.Zero
	for _, m := range movimientos {
		if m.Tipo == model.MovimientoEntrada {
			saldo = saldo.Add(m.Litros)
		} else {
			saldo = saldo.Sub(m.Litros)
		}
	}
	return saldo
}
