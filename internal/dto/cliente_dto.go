package dto

// CrearClienteRequest creates a new client.
type CrearClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=120"`
	Direccion string `json:"direccion" validate:"max=200"`
	Telefono  string `json:"telefono" validate:"max=40"`
}

// ActualizarClienteRequest replaces the editable fields of a client.
type ActualizarClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=120"`
	Direccion string `json:"direccion" validate:"max=200"`
	Telefono  string `json:"telefono" validate:"max=40"`
}
