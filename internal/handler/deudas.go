package handler

import (
	"errors"
	"net/http"

	"acopiapp/internal/apierror"
	"acopiapp/internal/dto"
	"acopiapp/internal/infra"
	"acopiapp/internal/model"
	"acopiapp/internal/service"

	"github.com/gin-gonic/gin"
)

// DeudasHandler exposes the debt ledger: aggregate debt, lump payments,
// account write-off and the consolidated statement (JSON and PDF).
type DeudasHandler struct {
	svc            service.VentaService
	nombreNegocio  string
	pdfStoragePath string
}

func NewDeudasHandler(svc service.VentaService, nombreNegocio, pdfStoragePath string) *DeudasHandler {
	return &DeudasHandler{svc: svc, nombreNegocio: nombreNegocio, pdfStoragePath: pdfStoragePath}
}

func (h *DeudasHandler) Deuda(c *gin.Context) {
	resp, err := h.svc.Deuda(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DeudasHandler) ResumenDeudas(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ResumenDeudas(c.Request.Context()))
}

// AbonoGlobal distributes one amount across the client's outstanding
// sales, oldest first. The amount may not exceed the aggregate debt.
func (h *DeudasHandler) AbonoGlobal(c *gin.Context) {
	var req dto.AbonoGlobalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.AbonoGlobal(c.Request.Context(), c.Param("id"), req); err != nil {
		if errors.Is(err, service.ErrClienteNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelarCuenta writes off every outstanding sale up to the cutoff date.
func (h *DeudasHandler) CancelarCuenta(c *gin.Context) {
	var req dto.CancelarCuentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CancelarCuenta(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrClienteNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DeudasHandler) EstadoCuenta(c *gin.Context) {
	desde, ok := h.fechaDesde(c)
	if !ok {
		return
	}
	filas, err := h.svc.EstadoCuenta(c.Request.Context(), c.Param("id"), desde)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, filas)
}

// EstadoCuentaPDF renders the statement with fpdf and streams the file.
func (h *DeudasHandler) EstadoCuentaPDF(c *gin.Context) {
	desde, ok := h.fechaDesde(c)
	if !ok {
		return
	}
	clienteID := c.Param("id")
	filas, err := h.svc.EstadoCuenta(c.Request.Context(), clienteID, desde)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	resumen, err := h.svc.Deuda(c.Request.Context(), clienteID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}

	path, err := infra.GenerarEstadoCuentaPDF(h.nombreNegocio, resumen.ClienteNombre, filas, h.pdfStoragePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el PDF"))
		return
	}
	c.FileAttachment(path, "estado_cuenta.pdf")
}

// fechaDesde parses the optional ?desde= query param. Writes the error
// response itself; callers bail out when ok is false.
func (h *DeudasHandler) fechaDesde(c *gin.Context) (*model.Fecha, bool) {
	raw := c.Query("desde")
	if raw == "" {
		return nil, true
	}
	fecha, err := model.ParseFecha(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return nil, false
	}
	return &fecha, true
}
