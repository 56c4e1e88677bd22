package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/gin-gonic/gin"
)

// BitacoraController maneja las entradas de bitácora
type BitacoraController struct {
	store *store.Store
}

func NewBitacoraController(s *store.Store) *BitacoraController {
	return &BitacoraController{store: s}
}

// Create crea una entrada de bitácora sobre un registro propio
func (bc *BitacoraController) Create(c *gin.Context) {
	var req models.CrearBitacoraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	bitacora, err := bc.store.CrearBitacora(req)
	if errors.Is(err, store.ErrUsuarioNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Usuario no encontrado"})
		return
	}
	if errors.Is(err, store.ErrRegistroNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Registro no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al crear bitácora")
		return
	}
	c.JSON(http.StatusCreated, bitacora)
}

// GetByUsuario lista las bitácoras de un usuario, paginadas
func (bc *BitacoraController) GetByUsuario(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pagina := paginaDeQuery(c)

	bitacoras, total, err := bc.store.BitacorasPorUsuario(id, pagina)
	if err != nil {
		responderError(c, err, "Error al obtener bitácoras")
		return
	}

	c.JSON(http.StatusOK, models.ListaPaginada{
		Data: bitacoras,
		Pagination: models.Paginacion{
			Total:  total,
			Limit:  pagina.Limit,
			Offset: pagina.Offset,
		},
	})
}

// GetByID devuelve una bitácora con los datos del registro y el usuario
func (bc *BitacoraController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	bitacora, err := bc.store.ObtenerBitacora(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Bitácora no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al obtener bitácora")
		return
	}
	c.JSON(http.StatusOK, bitacora)
}

// UpdateNota actualiza la nota de una bitácora
func (bc *BitacoraController) UpdateNota(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.ActualizarNotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	bitacora, err := bc.store.ActualizarNota(id, req.Nota)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Bitácora no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al actualizar bitácora")
		return
	}
	c.JSON(http.StatusOK, bitacora)
}

// Delete elimina una bitácora
func (bc *BitacoraController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := bc.store.EliminarBitacora(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Bitácora no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al eliminar bitácora")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bitácora eliminada correctamente"})
}

// GetResumen resume las emociones de un usuario en los últimos días
func (bc *BitacoraController) GetResumen(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	dias, err := strconv.Atoi(c.DefaultQuery("dias", "30"))
	if err != nil || dias < 1 {
		dias = 30
	}

	resumen, err := bc.store.ResumenEmocional(id, dias)
	if err != nil {
		responderError(c, err, "Error al obtener resumen")
		return
	}
	c.JSON(http.StatusOK, resumen)
}
