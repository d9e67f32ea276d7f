package dto

import (
	"acopiapp/internal/model"

	"github.com/shopspring/decimal"
)

// RegistrarProduccionRequest records one production run.
type RegistrarProduccionRequest struct {
	Fecha           string          `json:"fecha" validate:"required"`
	LitrosUsados    decimal.Decimal `json:"litros_usados" validate:"gt=0"`
	KilosProducidos decimal.Decimal `json:"kilos_producidos" validate:"gt=0"`
}

// ProduccionResponse is a run plus its derived transformation index.
type ProduccionResponse struct {
	model.Produccion
	IndiceTransformacion decimal.Decimal `json:"indice_transformacion"`
}
