package service

import (
	"context"
	"errors"

	"acopiapp/internal/dto"
	"acopiapp/internal/model"

	"github.com/google/uuid"
)

var ErrAcopioNoEncontrado = errors.New("acopio no encontrado")

type AcopioStore interface {
	Acopios() []model.Acopio
	ReplaceAcopios([]model.Acopio) error
	Proveedores() []model.Proveedor
}

type AcopioService interface {
	Registrar(ctx context.Context, req dto.RegistrarAcopioRequest) (*model.Acopio, error)
	Listar(ctx context.Context, filter dto.AcopioFilter) ([]model.Acopio, error)
	Eliminar(ctx context.Context, id string) error
}

type acopioService struct {
	store AcopioStore
}

func NewAcopioService(store AcopioStore) AcopioService {
	return &acopioService{store: store}
}

func (s *acopioService) Registrar(ctx context.Context, req dto.RegistrarAcopioRequest) (*model.Acopio, error) {
	fecha, err := model.ParseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}

	var proveedor *model.Proveedor
	for _, p := range s.store.Proveedores() {
		if p.ID == req.ProveedorID {
			proveedor = &p
			break
		}
	}
	if proveedor == nil {
		return nil, ErrProveedorNoEncontrado
	}

	acopio := model.Acopio{
		ID:              uuid.NewString(),
		Fecha:           fecha,
		ProveedorID:     proveedor.ID,
		ProveedorNombre: proveedor.Nombre,
		Litros:          req.Litros,
		PrecioLitro:     req.PrecioLitro,
		Total:           req.Litros.Mul(req.PrecioLitro),
	}
	acopios := append(s.store.Acopios(), acopio)
	if err := s.store.ReplaceAcopios(acopios); err != nil {
		return nil, err
	}
	return &acopio, nil
}

func (s *acopioService) Listar(ctx context.Context, filter dto.AcopioFilter) ([]model.Acopio, error) {
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

	resultado := make([]model.Acopio, 0)
	for _, a := range s.store.Acopios() {
		if filter.ProveedorID != "" && a.ProveedorID != filter.ProveedorID {
			continue
		}
		if !desde.EsCero() && a.Fecha.Antes(desde) {
			continue
		}
		if !hasta.EsCero() && a.Fecha.Despues(hasta) {
			continue
		}
		resultado = append(resultado, a)
	}
	return resultado, nil
}

func (s *acopioService) Eliminar(ctx context.Context, id string) error {
	acopios := s.store.Acopios()
	for i := range acopios {
		if acopios[i].ID == id {
			acopios = append(acopios[:i], acopios[i+1:]...)
			return s.store.ReplaceAcopios(acopios)
		}
	}
	return ErrAcopioNoEncontrado
}
