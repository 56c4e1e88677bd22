package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RodMac08/WellBloomBE/config"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/RodMac08/WellBloomBE/utils"
	"github.com/gin-gonic/gin"
)

// parseID lee un parámetro de ruta numérico; responde 400 si no lo es
func parseID(c *gin.Context, nombre string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(nombre), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
		return 0, false
	}
	return uint(id), true
}

// paginaDeQuery lee limit/offset de la query con los defaults del API
func paginaDeQuery(c *gin.Context) store.Pagina {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return store.Pagina{Limit: limit, Offset: offset}
}

// responderBinding responde 400 con todos los campos violados
func responderBinding(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ErroresDeValidacion(err)})
}

// responderError traduce los errores tipados del store a códigos HTTP. Un
// fallo inesperado de almacenamiento se registra y se responde genérico, sin
// filtrar detalle interno.
func responderError(c *gin.Context, err error, mensajeFallo string) {
	var ev *store.ErrorValidacion
	var ec *store.ErrorConflicto
	var ed *store.ErrorDependencia
	switch {
	case errors.As(err, &ev):
		c.JSON(http.StatusBadRequest, gin.H{"errors": ev.Errores})
	case errors.As(err, &ec):
		c.JSON(http.StatusConflict, gin.H{"message": ec.Mensaje})
	case errors.As(err, &ed):
		c.JSON(http.StatusBadRequest, gin.H{"message": ed.Mensaje})
	case errors.Is(err, store.ErrPropiedad):
		c.JSON(http.StatusForbidden, gin.H{"message": "El registro emocional no pertenece a este usuario"})
	default:
		if config.Logger != nil {
			config.Logger.Errorw(mensajeFallo,
				"error", err,
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": mensajeFallo})
	}
}
