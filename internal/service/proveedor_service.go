package service

import (
	"context"
	"errors"

	"acopiapp/internal/dto"
	"acopiapp/internal/model"

	"github.com/google/uuid"
)

var ErrProveedorNoEncontrado = errors.New("proveedor no encontrado")

type ProveedorStore interface {
	Proveedores() []model.Proveedor
	ReplaceProveedores([]model.Proveedor) error
}

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error)
	Listar(ctx context.Context) []model.Proveedor
	Obtener(ctx context.Context, id string) (*model.Proveedor, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarProveedorRequest) (*model.Proveedor, error)
	Eliminar(ctx context.Context, id string) error
}

type proveedorService struct {
	store ProveedorStore
}

func NewProveedorService(store ProveedorStore) ProveedorService {
	return &proveedorService{store: store}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error) {
	proveedor := model.Proveedor{
		ID:       uuid.NewString(),
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Tambo:    req.Tambo,
	}
	proveedores := append(s.store.Proveedores(), proveedor)
	if err := s.store.ReplaceProveedores(proveedores); err != nil {
		return nil, err
	}
	return &proveedor, nil
}

func (s *proveedorService) Listar(ctx context.Context) []model.Proveedor {
	return s.store.Proveedores()
}

func (s *proveedorService) Obtener(ctx context.Context, id string) (*model.Proveedor, error) {
	for _, p := range s.store.Proveedores() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProveedorNoEncontrado
}

func (s *proveedorService) Actualizar(ctx context.Context, id string, req dto.ActualizarProveedorRequest) (*model.Proveedor, error) {
	proveedores := s.store.Proveedores()
	for i := range proveedores {
		if proveedores[i].ID != id {
			continue
		}
		proveedores[i].Nombre = req.Nombre
		proveedores[i].Telefono = req.Telefono
		proveedores[i].Tambo = req.Tambo
		if err := s.store.ReplaceProveedores(proveedores); err != nil {
			return nil, err
		}
		actualizado := proveedores[i]
		return &actualizado, nil
	}
	return nil, ErrProveedorNoEncontrado
}

func (s *proveedorService) Eliminar(ctx context.Context, id string) error {
	proveedores := s.store.Proveedores()
	for i := range proveedores {
		if proveedores[i].ID == id {
			proveedores = append(proveedores[:i], proveedores[i+1:]...)
			return s.store.ReplaceProveedores(proveedores)
		}
	}
	return ErrProveedorNoEncontrado
}
