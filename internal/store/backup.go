package store

import (
	"encoding/json"
	"fmt"
	"time"

	"acopiapp/internal/model"
)

// BackupVersion tags exported documents; bumped only on breaking layout
// changes.
const BackupVersion = 1

// Backup is the single-document export of every collection. Restore
// requires every key under Datos to be present, so a truncated or foreign
// JSON file is rejected before anything is overwritten.
type Backup struct {
	Version  int         `json:"version"`
	Generado time.Time   `json:"generado"`
	Datos    BackupDatos `json:"datos"`
}

type BackupDatos struct {
	Clientes         []model.Cliente         `json:"clientes"`
	Proveedores      []model.Proveedor       `json:"proveedores"`
	Ventas           []model.Venta           `json:"ventas"`
	Acopios          []model.Acopio          `json:"acopios"`
	Producciones     []model.Produccion      `json:"producciones"`
	MovimientosLeche []model.MovimientoLeche `json:"movimientos_leche"`
}

// Exportar snapshots the full dataset into one backup document.
func (s *Store) Exportar() *Backup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Backup{
		Version:  BackupVersion,
		Generado: time.Now().UTC(),
		Datos: BackupDatos{
			Clientes:         copiarClientes(s.clientes),
			Proveedores:      append([]model.Proveedor(nil), s.proveedores...),
			Ventas:           copiarVentas(s.ventas),
			Acopios:          append([]model.Acopio(nil), s.acopios...),
			Producciones:     append([]model.Produccion(nil), s.producciones...),
			MovimientosLeche: append([]model.MovimientoLeche(nil), s.movimientos...),
		},
	}
}

// ValidarBackup parses and shape-checks a raw backup document without
// touching the store. All six collection keys must be present (an empty
// array is fine, a missing key is not) and every record must pass its
// model validation.
func ValidarBackup(raw []byte) (*Backup, error) {
	var sondeo struct {
		Version int                        `json:"version"`
		Datos   map[string]json.RawMessage `json:"datos"`
	}
	if err := json.Unmarshal(raw, &sondeo); err != nil {
		return nil, fmt.Errorf("respaldo ilegible: %w", err)
	}
	if sondeo.Datos == nil {
		return nil, fmt.Errorf("respaldo inválido: falta la sección datos")
	}
	for _, key := range Keys {
		if _, ok := sondeo.Datos[key]; !ok {
			return nil, fmt.Errorf("respaldo inválido: falta la clave %q", key)
		}
	}

	var backup Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return nil, fmt.Errorf("respaldo ilegible: %w", err)
	}

	for i := range backup.Datos.Clientes {
		if err := backup.Datos.Clientes[i].Validar(); err != nil {
			return nil, fmt.Errorf("respaldo inválido: %w", err)
		}
	}
	for i := range backup.Datos.Proveedores {
		if err := backup.Datos.Proveedores[i].Validar(); err != nil {
			return nil, fmt.Errorf("respaldo inválido: %w", err)
		}
	}
	for i := range backup.Datos.Ventas {
		if err := backup.Datos.Ventas[i].Validar(); err != nil {
			return nil, fmt.Errorf("respaldo inválido: %w", err)
		}
	}
	for i := range backup.Datos.Acopios {
		if err := backup.Datos.Acopios[i].Validar(); err != nil {
			return nil, fmt.Errorf("respaldo inválido: %w", err)
		}
	}
	for i := range backup.Datos.Producciones {
		if err := backup.Datos.Producciones[i].Validar(); err != nil {
			return nil, fmt.Errorf("respaldo inválido: %w", err)
		}
	}
	for i := range backup.Datos.MovimientosLeche {
		if err := backup.Datos.MovimientosLeche[i].Validar(); err != nil {
			return nil, fmt.Errorf("respaldo inválido: %w", err)
		}
	}
	return &backup, nil
}

// Restaurar replaces every collection with the backup's contents and
// persists them. The caller validates first (ValidarBackup); by the time we
// are here the document is trusted. Files are written one by one; a failure
// midway leaves already-written collections restored, matching the
// overwrite-whole-blob durability model.
func (s *Store) Restaurar(b *Backup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pasos := []struct {
		key       string
		registros any
	}{
		{KeyClientes, b.Datos.Clientes},
		{KeyProveedores, b.Datos.Proveedores},
		{KeyVentas, b.Datos.Ventas},
		{KeyAcopios, b.Datos.Acopios},
		{KeyProducciones, b.Datos.Producciones},
		{KeyMovimientos, b.Datos.MovimientosLeche},
	}
	for _, paso := range pasos {
		if err := s.escribir(paso.key, paso.registros); err != nil {
			return err
		}
	}

	s.clientes = copiarClientes(b.Datos.Clientes)
	s.proveedores = append([]model.Proveedor(nil), b.Datos.Proveedores...)
	s.ventas = copiarVentas(b.Datos.Ventas)
	s.acopios = append([]model.Acopio(nil), b.Datos.Acopios...)
	s.producciones = append([]model.Produccion(nil), b.Datos.Producciones...)
	s.movimientos = append([]model.MovimientoLeche(nil), b.Datos.MovimientosLeche...)
	return nil
}
