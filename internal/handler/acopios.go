package handler

import (
	"errors"
	"net/http"

	"acopiapp/internal/apierror"
	"acopiapp/internal/dto"
	"acopiapp/internal/service"

	"github.com/gin-gonic/gin"
)

type AcopiosHandler struct{ svc service.AcopioService }

func NewAcopiosHandler(svc service.AcopioService) *AcopiosHandler {
	return &AcopiosHandler{svc: svc}
}

func (h *AcopiosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarAcopioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	acopio, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrProveedorNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, acopio)
}

func (h *AcopiosHandler) Listar(c *gin.Context) {
	var filter dto.AcopioFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	acopios, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, acopios)
}

func (h *AcopiosHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
