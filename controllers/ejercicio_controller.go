package controllers

import (
	"errors"
	"net/http"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/gin-gonic/gin"
)

// EjercicioController maneja los ejercicios de las actividades
type EjercicioController struct {
	store *store.Store
}

func NewEjercicioController(s *store.Store) *EjercicioController {
	return &EjercicioController{store: s}
}

// Create crea un ejercicio ligado a una actividad
func (ec *EjercicioController) Create(c *gin.Context) {
	var req models.CrearEjercicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	ejercicio, err := ec.store.CrearEjercicio(req)
	if err != nil {
		responderError(c, err, "Error al crear ejercicio")
		return
	}
	c.JSON(http.StatusCreated, ejercicio)
}

// GetByActividad lista los ejercicios de una actividad
func (ec *EjercicioController) GetByActividad(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ejercicios, err := ec.store.EjerciciosPorActividad(id)
	if err != nil {
		responderError(c, err, "Error al obtener ejercicios")
		return
	}
	c.JSON(http.StatusOK, ejercicios)
}

// Update aplica un parche a un ejercicio
func (ec *EjercicioController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.ActualizarEjercicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	ejercicio, err := ec.store.ActualizarEjercicio(id, req)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ejercicio no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al actualizar ejercicio")
		return
	}
	c.JSON(http.StatusOK, ejercicio)
}

// Complete marca un ejercicio como completado
func (ec *EjercicioController) Complete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := ec.store.CompletarEjercicio(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ejercicio no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al completar ejercicio")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ejercicio marcado como completado"})
}

// Delete elimina un ejercicio
func (ec *EjercicioController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := ec.store.EliminarEjercicio(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ejercicio no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al eliminar ejercicio")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ejercicio eliminado correctamente"})
}

// GetByTurno lista los ejercicios de un turno
func (ec *EjercicioController) GetByTurno(c *gin.Context) {
	turno := c.Param("turno")
	if turno != models.TurnoManana && turno != models.TurnoTarde && turno != models.TurnoNoche {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Turno inválido"})
		return
	}

	ejercicios, err := ec.store.EjerciciosPorTurno(turno)
	if err != nil {
		responderError(c, err, "Error al obtener ejercicios")
		return
	}
	c.JSON(http.StatusOK, ejercicios)
}

// GetEstadisticas cuenta ejercicios por turno
func (ec *EjercicioController) GetEstadisticas(c *gin.Context) {
	estadisticas, err := ec.store.EstadisticasPorTurno()
	if err != nil {
		responderError(c, err, "Error al obtener estadísticas")
		return
	}
	c.JSON(http.StatusOK, estadisticas)
}
