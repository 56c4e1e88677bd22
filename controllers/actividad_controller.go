package controllers

import (
	"errors"
	"net/http"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/gin-gonic/gin"
)

// ActividadController maneja el CRUD de actividades
type ActividadController struct {
	store *store.Store
}

func NewActividadController(s *store.Store) *ActividadController {
	return &ActividadController{store: s}
}

// GetAll lista todas las actividades con sus relaciones
func (ac *ActividadController) GetAll(c *gin.Context) {
	actividades, err := ac.store.ListarActividades()
	if err != nil {
		responderError(c, err, "Error al obtener actividades")
		return
	}
	c.JSON(http.StatusOK, actividades)
}

// Create crea una nueva actividad
func (ac *ActividadController) Create(c *gin.Context) {
	var req models.CrearActividadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	actividad, err := ac.store.CrearActividad(req)
	if err != nil {
		responderError(c, err, "Error al crear actividad")
		return
	}
	c.JSON(http.StatusCreated, actividad)
}

// GetByID devuelve una actividad con sus ejercicios y meditación
func (ac *ActividadController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actividad, err := ac.store.ObtenerActividad(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Actividad no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al obtener actividad")
		return
	}
	c.JSON(http.StatusOK, actividad)
}

// Update actualiza una actividad
func (ac *ActividadController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.CrearActividadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	actividad, err := ac.store.ActualizarActividad(id, req)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Actividad no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al actualizar actividad")
		return
	}
	c.JSON(http.StatusOK, actividad)
}

// Delete elimina una actividad sin dependientes
func (ac *ActividadController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := ac.store.EliminarActividad(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Actividad no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al eliminar actividad")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Actividad eliminada correctamente"})
}

// Search busca actividades por nombre
func (ac *ActividadController) Search(c *gin.Context) {
	actividades, err := ac.store.BuscarActividades(c.Query("query"))
	if err != nil {
		responderError(c, err, "Error en búsqueda")
		return
	}
	c.JSON(http.StatusOK, actividades)
}
