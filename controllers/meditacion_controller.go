package controllers

import (
	"errors"
	"net/http"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/gin-gonic/gin"
)

// MeditacionController maneja las meditaciones guiadas
type MeditacionController struct {
	store *store.Store
}

func NewMeditacionController(s *store.Store) *MeditacionController {
	return &MeditacionController{store: s}
}

// Create crea la meditación de una actividad
func (mc *MeditacionController) Create(c *gin.Context) {
	var req models.CrearMeditacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	meditacion, err := mc.store.CrearMeditacion(req)
	if err != nil {
		responderError(c, err, "Error al crear meditación")
		return
	}
	c.JSON(http.StatusCreated, meditacion)
}

// GetByID devuelve una meditación por id
func (mc *MeditacionController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	meditacion, err := mc.store.ObtenerMeditacion(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meditación no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al obtener meditación")
		return
	}
	c.JSON(http.StatusOK, meditacion)
}

// GetByActividad devuelve la meditación asociada a una actividad
func (mc *MeditacionController) GetByActividad(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	meditacion, err := mc.store.MeditacionPorActividad(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "La actividad no tiene meditación asociada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al obtener meditación")
		return
	}
	c.JSON(http.StatusOK, meditacion)
}

// Update aplica un parche a una meditación
func (mc *MeditacionController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.ActualizarMeditacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	meditacion, err := mc.store.ActualizarMeditacion(id, req)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meditación no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al actualizar meditación")
		return
	}
	c.JSON(http.StatusOK, meditacion)
}

// Complete marca una meditación como completada
func (mc *MeditacionController) Complete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := mc.store.CompletarMeditacion(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meditación no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al completar meditación")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meditación marcada como completada"})
}

// Delete elimina una meditación
func (mc *MeditacionController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := mc.store.EliminarMeditacion(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meditación no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al eliminar meditación")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meditación eliminada correctamente"})
}

// GetCompletadas lista las meditaciones completadas
func (mc *MeditacionController) GetCompletadas(c *gin.Context) {
	meditaciones, err := mc.store.MeditacionesCompletadas()
	if err != nil {
		responderError(c, err, "Error al obtener meditaciones")
		return
	}
	c.JSON(http.StatusOK, meditaciones)
}
