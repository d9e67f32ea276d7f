package service

import (
	"context"

	"acopiapp/internal/store"

	"github.com/rs/zerolog/log"
)

// RespaldoService exports the full dataset as one JSON document and
// restores from one, validating every expected key before overwriting
// anything.
type RespaldoService interface {
	Exportar(ctx context.Context) *store.Backup
	Restaurar(ctx context.Context, raw []byte) error
}

type respaldoService struct {
	store *store.Store
}

func NewRespaldoService(st *store.Store) RespaldoService {
	return &respaldoService{store: st}
}

func (s *respaldoService) Exportar(ctx context.Context) *store.Backup {
	return s.store.Exportar()
}

func (s *respaldoService) Restaurar(ctx context.Context, raw []byte) error {
	backup, err := store.ValidarBackup(raw)
	if err != nil {
		return err
	}
	if err := s.store.Restaurar(backup); err != nil {
		return err
	}
	log.Info().
		Int("clientes", len(backup.Datos.Clientes)).
		Int("ventas", len(backup.Datos.Ventas)).
		Int("acopios", len(backup.Datos.Acopios)).
		Msg("respaldo restaurado")
	return nil
}
