package dto

// CrearProveedorRequest registers a raw-milk supplier.
type CrearProveedorRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=120"`
	Telefono string `json:"telefono" validate:"max=40"`
	Tambo    string `json:"tambo" validate:"max=120"`
}

// ActualizarProveedorRequest replaces the editable fields of a supplier.
type ActualizarProveedorRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=120"`
	Telefono string `json:"telefono" validate:"max=40"`
	Tambo    string `json:"tambo" validate:"max=120"`
}
