// Package store owns the canonical dataset: one JSON file per named
// collection under the data directory, loaded in full at open and rewritten
// in full after every mutation. Read accessors hand out copies; services do
// read-modify-write through the Replace* methods, which persist before
// returning.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"acopiapp/internal/model"

	"github.com/rs/zerolog/log"
)

// Collection file names. These are the persisted key names and the expected
// top-level keys of a backup document.
const (
	KeyClientes     = "clientes"
	KeyProveedores  = "proveedores"
	KeyVentas       = "ventas"
	KeyAcopios      = "acopios"
	KeyProducciones = "producciones"
	KeyMovimientos  = "movimientos_leche"
)

// Keys lists every collection key, in backup-document order.
var Keys = []string{KeyClientes, KeyProveedores, KeyVentas, KeyAcopios, KeyProducciones, KeyMovimientos}

// Store holds every collection in memory behind one RWMutex. There is a
// single writer in practice (one local user), but the HTTP layer can serve
// concurrent requests, so reads and writes are still guarded.
type Store struct {
	mu   sync.RWMutex
	path string

	clientes     []model.Cliente
	proveedores  []model.Proveedor
	ventas       []model.Venta
	acopios      []model.Acopio
	producciones []model.Produccion
	movimientos  []model.MovimientoLeche
}

// Abrir opens the store rooted at dataPath, creating the directory if
// needed and loading every collection. A missing file is an empty
// collection. A file with unparseable JSON is cleared and replaced by an
// empty collection (logged, not fatal). Records failing shape validation
// are dropped with a log line.
func Abrir(dataPath string) (*Store, error) {
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		return nil, fmt.Errorf("store: crear directorio de datos: %w", err)
	}
	s := &Store{path: dataPath}

	if err := cargar(s, KeyClientes, &s.clientes, func(c *model.Cliente) error { return c.Validar() }); err != nil {
		return nil, err
	}
	if err := cargar(s, KeyProveedores, &s.proveedores, func(p *model.Proveedor) error { return p.Validar() }); err != nil {
		return nil, err
	}
	if err := cargar(s, KeyVentas, &s.ventas, func(v *model.Venta) error { return v.Validar() }); err != nil {
		return nil, err
	}
	if err := cargar(s, KeyAcopios, &s.acopios, func(a *model.Acopio) error { return a.Validar() }); err != nil {
		return nil, err
	}
	if err := cargar(s, KeyProducciones, &s.producciones, func(p *model.Produccion) error { return p.Validar() }); err != nil {
		return nil, err
	}
	if err := cargar(s, KeyMovimientos, &s.movimientos, func(m *model.MovimientoLeche) error { return m.Validar() }); err != nil {
		return nil, err
	}
	return s, nil
}

// cargar reads one collection file into dest, applying the shape validator
// per record. Corrupted JSON resets the key to empty (spec'd degradation:
// the rest of the dataset stays usable).
func cargar[T any](s *Store, key string, dest *[]T, validar func(*T) error) error {
	file := s.archivo(key)
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		*dest = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: leer %s: %w", key, err)
	}

	var registros []T
	if err := json.Unmarshal(data, &registros); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("colección corrupta, se restablece vacía")
		*dest = nil
		return s.escribir(key, []T{})
	}

	validos := make([]T, 0, len(registros))
	for i := range registros {
		if err := validar(&registros[i]); err != nil {
			log.Warn().Str("key", key).Err(err).Msg("registro inválido descartado al cargar")
			continue
		}
		validos = append(validos, registros[i])
	}
	*dest = validos
	return nil
}

func (s *Store) archivo(key string) string {
	return filepath.Join(s.path, key+".json")
}

// escribir persists one collection atomically (temp file + rename), so a
// crash mid-write leaves either the old or the new content, never a torn
// file.
func (s *Store) escribir(key string, registros any) error {
	data, err := json.MarshalIndent(registros, "", "  ")
	if err != nil {
		return fmt.Errorf("store: serializar %s: %w", key, err)
	}
	tmp := s.archivo(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.archivo(key)); err != nil {
		return fmt.Errorf("store: renombrar %s: %w", key, err)
	}
	return nil
}

// ── Read accessors (copies) ──────────────────────────────────────────────────

func (s *Store) Clientes() []model.Cliente {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copiarClientes(s.clientes)
}

func (s *Store) Proveedores() []model.Proveedor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Proveedor, len(s.proveedores))
	copy(out, s.proveedores)
	return out
}

func (s *Store) Ventas() []model.Venta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copiarVentas(s.ventas)
}

func (s *Store) Acopios() []model.Acopio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Acopio, len(s.acopios))
	copy(out, s.acopios)
	return out
}

func (s *Store) Producciones() []model.Produccion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Produccion, len(s.producciones))
	copy(out, s.producciones)
	return out
}

func (s *Store) MovimientosLeche() []model.MovimientoLeche {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.MovimientoLeche, len(s.movimientos))
	copy(out, s.movimientos)
	return out
}

// Ventas share their Pagos slice backing array with the stored records;
// deep-copy so callers can mutate freely before committing via Replace.
func copiarVentas(ventas []model.Venta) []model.Venta {
	out := make([]model.Venta, len(ventas))
	copy(out, ventas)
	for i := range out {
		pagos := make([]model.Pago, len(out[i].Pagos))
		copy(pagos, out[i].Pagos)
		out[i].Pagos = pagos
	}
	return out
}

func copiarClientes(clientes []model.Cliente) []model.Cliente {
	out := make([]model.Cliente, len(clientes))
	copy(out, clientes)
	return out
}

// ── Replace methods (save-after-mutate) ──────────────────────────────────────

func (s *Store) ReplaceClientes(clientes []model.Cliente) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.escribir(KeyClientes, clientes); err != nil {
		return err
	}
	s.clientes = copiarClientes(clientes)
	return nil
}

func (s *Store) ReplaceProveedores(proveedores []model.Proveedor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.escribir(KeyProveedores, proveedores); err != nil {
		return err
	}
	s.proveedores = append([]model.Proveedor(nil), proveedores...)
	return nil
}

func (s *Store) ReplaceVentas(ventas []model.Venta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.escribir(KeyVentas, ventas); err != nil {
		return err
	}
	s.ventas = copiarVentas(ventas)
	return nil
}

func (s *Store) ReplaceAcopios(acopios []model.Acopio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.escribir(KeyAcopios, acopios); err != nil {
		return err
	}
	s.acopios = append([]model.Acopio(nil), acopios...)
	return nil
}

func (s *Store) ReplaceProducciones(producciones []model.Produccion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.escribir(KeyProducciones, producciones); err != nil {
		return err
	}
	s.producciones = append([]model.Produccion(nil), producciones...)
	return nil
}

func (s *Store) ReplaceMovimientosLeche(movimientos []model.MovimientoLeche) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.escribir(KeyMovimientos, movimientos); err != nil {
		return err
	}
	s.movimientos = append([]model.MovimientoLeche(nil), movimientos...)
	return nil
}
