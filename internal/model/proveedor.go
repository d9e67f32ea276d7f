package model

import "errors"

// Proveedor is a raw-milk supplier (tambero) delivering daily acopios.
type Proveedor struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	// Tambo identifies the farm the milk comes from.
	Tambo string `json:"tambo"`
}

func (p *Proveedor) Validar() error {
	if p.ID == "" {
		return errors.New("proveedor sin id")
	}
	if p.Nombre == "" {
		return errors.New("proveedor sin nombre")
	}
	return nil
}
