package handler

import (
	"net/http"

	"acopiapp/internal/apierror"
	"acopiapp/internal/model"
	"acopiapp/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Semanal aggregates the Monday-start week containing ?fecha= (default:
// today).
func (h *ReportesHandler) Semanal(c *gin.Context) {
	fecha := model.HoyFecha()
	if raw := c.Query("fecha"); raw != "" {
		parsed, err := model.ParseFecha(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		fecha = parsed
	}
	c.JSON(http.StatusOK, h.svc.Semanal(c.Request.Context(), fecha))
}

func (h *ReportesHandler) Estadisticas(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Estadisticas(c.Request.Context()))
}
