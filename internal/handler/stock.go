package handler

import (
	"net/http"

	"acopiapp/internal/apierror"
	"acopiapp/internal/dto"
	"acopiapp/internal/service"

	"github.com/gin-gonic/gin"
)

type StockLecheHandler struct{ svc service.StockLecheService }

func NewStockLecheHandler(svc service.StockLecheService) *StockLecheHandler {
	return &StockLecheHandler{svc: svc}
}

// RegistrarMovimiento records an entrada or salida; a salida beyond the
// current level is rejected before anything is written.
func (h *StockLecheHandler) RegistrarMovimiento(c *gin.Context) {
	var req dto.RegistrarMovimientoLecheRequest
	if !bindAndValidate(c, &req) {
		return
	}
	mov, err := h.svc.RegistrarMovimiento(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, mov)
}

func (h *StockLecheHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

func (h *StockLecheHandler) Saldo(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Saldo(c.Request.Context()))
}
