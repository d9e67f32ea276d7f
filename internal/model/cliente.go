package model

import "errors"

// Cliente represents a buyer of finished product.
type Cliente struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}

// Validar checks the record shape. Used at the load/import boundary so that
// persisted records missing required fields are rejected instead of silently
// defaulted.
func (c *Cliente) Validar() error {
	if c.ID == "" {
		return errors.New("cliente sin id")
	}
	if c.Nombre == "" {
		return errors.New("cliente sin nombre")
	}
	return nil
}
