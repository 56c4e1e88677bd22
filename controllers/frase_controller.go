package controllers

import (
	"errors"
	"net/http"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/gin-gonic/gin"
)

// FraseController maneja las frases motivacionales
type FraseController struct {
	store *store.Store
}

func NewFraseController(s *store.Store) *FraseController {
	return &FraseController{store: s}
}

// GetAll lista todas las frases con su emoción
func (fc *FraseController) GetAll(c *gin.Context) {
	frases, err := fc.store.ListarFrases()
	if err != nil {
		responderError(c, err, "Error al obtener frases")
		return
	}
	c.JSON(http.StatusOK, frases)
}

// Create crea una frase asociada a una emoción
func (fc *FraseController) Create(c *gin.Context) {
	var req models.CrearFraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	frase, err := fc.store.CrearFrase(req)
	if err != nil {
		responderError(c, err, "Error al crear frase")
		return
	}
	c.JSON(http.StatusCreated, frase)
}

// GetByEmocion lista las frases de una emoción
func (fc *FraseController) GetByEmocion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	frases, err := fc.store.FrasesPorEmocion(id)
	if err != nil {
		responderError(c, err, "Error al obtener frases")
		return
	}
	c.JSON(http.StatusOK, frases)
}

// GetAleatoria devuelve una frase al azar de una emoción
func (fc *FraseController) GetAleatoria(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	frase, err := fc.store.FraseAleatoria(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No hay frases para esta emoción"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al obtener frase")
		return
	}
	c.JSON(http.StatusOK, frase)
}

// Update actualiza una frase
func (fc *FraseController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.CrearFraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	frase, err := fc.store.ActualizarFrase(id, req)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Frase no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al actualizar frase")
		return
	}
	c.JSON(http.StatusOK, frase)
}

// Delete elimina una frase
func (fc *FraseController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := fc.store.EliminarFrase(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Frase no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al eliminar frase")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Frase eliminada correctamente"})
}

// Search busca frases por texto o autor
func (fc *FraseController) Search(c *gin.Context) {
	frases, err := fc.store.BuscarFrases(c.Query("query"))
	if err != nil {
		responderError(c, err, "Error en búsqueda")
		return
	}
	c.JSON(http.StatusOK, frases)
}
