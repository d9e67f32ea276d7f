package service

import (
	"context"
	"errors"

	"acopiapp/internal/dto"
	"acopiapp/internal/model"

	"github.com/google/uuid"
)

var ErrClienteNoEncontrado = errors.New("cliente no encontrado")

// ClienteStore is the slice of the store the client service needs.
type ClienteStore interface {
	Clientes() []model.Cliente
	ReplaceClientes([]model.Cliente) error
}

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error)
	Listar(ctx context.Context) []model.Cliente
	Obtener(ctx context.Context, id string) (*model.Cliente, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarClienteRequest) (*model.Cliente, error)
	Eliminar(ctx context.Context, id string) error
}

type clienteService struct {
	store ClienteStore
}

func NewClienteService(store ClienteStore) ClienteService {
	return &clienteService{store: store}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error) {
	cliente := model.Cliente{
		ID:        uuid.NewString(),
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
	}
	clientes := append(s.store.Clientes(), cliente)
	if err := s.store.ReplaceClientes(clientes); err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (s *clienteService) Listar(ctx context.Context) []model.Cliente {
	return s.store.Clientes()
}

func (s *clienteService) Obtener(ctx context.Context, id string) (*model.Cliente, error) {
	for _, c := range s.store.Clientes() {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrClienteNoEncontrado
}

func (s *clienteService) Actualizar(ctx context.Context, id string, req dto.ActualizarClienteRequest) (*model.Cliente, error) {
	clientes := s.store.Clientes()
	for i := range clientes {
		if clientes[i].ID != id {
			continue
		}
		clientes[i].Nombre = req.Nombre
		clientes[i].Direccion = req.Direccion
		clientes[i].Telefono = req.Telefono
		if err := s.store.ReplaceClientes(clientes); err != nil {
			return nil, err
		}
		actualizado := clientes[i]
		return &actualizado, nil
	}
	return nil, ErrClienteNoEncontrado
}

// Eliminar removes the client record. Existing sales keep their snapshot of
// the client name, so statements remain readable.
func (s *clienteService) Eliminar(ctx context.Context, id string) error {
	clientes := s.store.Clientes()
	for i := range clientes {
		if clientes[i].ID == id {
			clientes = append(clientes[:i], clientes[i+1:]...)
			return s.store.ReplaceClientes(clientes)
		}
	}
	return ErrClienteNoEncontrado
}
