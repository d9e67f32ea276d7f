package handler

import (
	"io"
	"net/http"

	"acopiapp/internal/apierror"
	"acopiapp/internal/service"

	"github.com/gin-gonic/gin"
)

// maxBackupBytes caps restore uploads; the dataset is a few thousand small
// records at most.
const maxBackupBytes = 16 << 20

type RespaldoHandler struct{ svc service.RespaldoService }

func NewRespaldoHandler(svc service.RespaldoService) *RespaldoHandler {
	return &RespaldoHandler{svc: svc}
}

// Exportar returns the full dataset as one JSON document.
func (h *RespaldoHandler) Exportar(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="acopiapp_respaldo.json"`)
	c.JSON(http.StatusOK, h.svc.Exportar(c.Request.Context()))
}

// Restaurar validates the uploaded document (every collection key must be
// present, every record well-shaped) before overwriting anything.
func (h *RespaldoHandler) Restaurar(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el respaldo"))
		return
	}
	if err := h.svc.Restaurar(c.Request.Context(), raw); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
