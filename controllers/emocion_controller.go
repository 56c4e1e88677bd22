package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/gin-gonic/gin"
)

// EmocionController maneja el catálogo de emociones
type EmocionController struct {
	store *store.Store
}

func NewEmocionController(s *store.Store) *EmocionController {
	return &EmocionController{store: s}
}

// GetAll lista emociones paginadas por número de página
func (ec *EmocionController) GetAll(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	emociones, total, err := ec.store.ListarEmociones(page, limit)
	if err != nil {
		responderError(c, err, "Error al obtener emociones")
		return
	}

	c.JSON(http.StatusOK, models.ListaPaginada{
		Data: emociones,
		Pagination: models.PaginacionPorPagina{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// GetByID devuelve una emoción por id
func (ec *EmocionController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	emocion, err := ec.store.ObtenerEmocion(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Emoción no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al obtener emoción")
		return
	}
	c.JSON(http.StatusOK, emocion)
}

// Create registra una emoción nueva en el catálogo
func (ec *EmocionController) Create(c *gin.Context) {
	var req models.CrearEmocionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	emocion, err := ec.store.CrearEmocion(req)
	if err != nil {
		responderError(c, err, "Error al crear emoción")
		return
	}
	c.JSON(http.StatusCreated, emocion)
}

// Update actualiza una emoción existente
func (ec *EmocionController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.CrearEmocionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	emocion, err := ec.store.ActualizarEmocion(id, req)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Emoción no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al actualizar emoción")
		return
	}
	c.JSON(http.StatusOK, emocion)
}

// Delete elimina una emoción sin registros asociados
func (ec *EmocionController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := ec.store.EliminarEmocion(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Emoción no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al eliminar emoción")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Emoción eliminada correctamente"})
}

// GetFrases lista las frases asociadas a una emoción
func (ec *EmocionController) GetFrases(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	// Una emoción inexistente responde lista vacía, igual que una sin frases
	frases, err := ec.store.FrasesDeEmocion(id)
	if err != nil {
		responderError(c, err, "Error al obtener frases")
		return
	}
	c.JSON(http.StatusOK, frases)
}
