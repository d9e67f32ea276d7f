package service

import (
	"context"
	"errors"

	"acopiapp/internal/dto"
	"acopiapp/internal/model"

	"github.com/google/uuid"
)

var ErrProduccionNoEncontrada = errors.New("producción no encontrada")

type ProduccionStore interface {
	Producciones() []model.Produccion
	ReplaceProducciones([]model.Produccion) error
}

type ProduccionService interface {
	Registrar(ctx context.Context, req dto.RegistrarProduccionRequest) (*dto.ProduccionResponse, error)
	Listar(ctx context.Context) []dto.ProduccionResponse
	Eliminar(ctx context.Context, id string) error
}

type produccionService struct {
	store ProduccionStore
}

func NewProduccionService(store ProduccionStore) ProduccionService {
	return &produccionService{store: store}
}

func (s *produccionService) Registrar(ctx context.Context, req dto.RegistrarProduccionRequest) (*dto.ProduccionResponse, error) {
	fecha, err := model.ParseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}

	produccion := model.Produccion{
		ID:              uuid.NewString(),
		Fecha:           fecha,
		LitrosUsados:    req.LitrosUsados,
		KilosProducidos: req.KilosProducidos,
	}
	producciones := append(s.store.Producciones(), produccion)
	if err := s.store.ReplaceProducciones(producciones); err != nil {
		return nil, err
	}
	return aRespuesta(&produccion), nil
}

func (s *produccionService) Listar(ctx context.Context) []dto.ProduccionResponse {
	producciones := s.store.Producciones()
	resultado := make([]dto.ProduccionResponse, 0, len(producciones))
	for i := range producciones {
		resultado = append(resultado, *aRespuesta(&producciones[i]))
	}
	return resultado
}

func (s *produccionService) Eliminar(ctx context.Context, id string) error {
	producciones := s.store.Producciones()
	for i := range producciones {
		if producciones[i].ID == id {
			producciones = append(producciones[:i], producciones[i+1:]...)
			return s.store.ReplaceProducciones(producciones)
		}
	}
	return ErrProduccionNoEncontrada
}

func aRespuesta(p *model.Produccion) *dto.ProduccionResponse {
	return &dto.ProduccionResponse{
		Produccion:           *p,
		IndiceTransformacion: p.IndiceTransformacion().Round(2),
	}
}
