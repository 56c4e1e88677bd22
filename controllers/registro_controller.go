package controllers

import (
	"errors"
	"net/http"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/gin-gonic/gin"
)

// RegistroController maneja los registros emocionales
type RegistroController struct {
	store *store.Store
}

func NewRegistroController(s *store.Store) *RegistroController {
	return &RegistroController{store: s}
}

// GetAll lista todos los registros emocionales
func (rc *RegistroController) GetAll(c *gin.Context) {
	registros, err := rc.store.ListarRegistros()
	if err != nil {
		responderError(c, err, "Error al obtener registros")
		return
	}
	c.JSON(http.StatusOK, registros)
}

// Create crea un registro emocional para un usuario
func (rc *RegistroController) Create(c *gin.Context) {
	var req models.CrearRegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	registro, err := rc.store.CrearRegistro(req)
	if errors.Is(err, store.ErrUsuarioNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Usuario no encontrado"})
		return
	}
	if errors.Is(err, store.ErrEmocionNoEncontrada) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Emoción no encontrada"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al crear registro")
		return
	}
	c.JSON(http.StatusCreated, registro)
}

// GetByUsuario lista los registros de un usuario, paginados
func (rc *RegistroController) GetByUsuario(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pagina := paginaDeQuery(c)

	registros, total, err := rc.store.RegistrosPorUsuario(id, pagina)
	if err != nil {
		responderError(c, err, "Error al obtener registros")
		return
	}

	c.JSON(http.StatusOK, models.ListaPaginada{
		Data: registros,
		Pagination: models.Paginacion{
			Total:  total,
			Limit:  pagina.Limit,
			Offset: pagina.Offset,
		},
	})
}

// Delete elimina un registro emocional
func (rc *RegistroController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := rc.store.EliminarRegistro(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Registro no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al eliminar registro")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registro eliminado correctamente"})
}

// GetEstadisticas agrupa los registros de un usuario por emoción
func (rc *RegistroController) GetEstadisticas(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	estadisticas, err := rc.store.EstadisticasUsuario(id)
	if err != nil {
		responderError(c, err, "Error al obtener estadísticas")
		return
	}
	c.JSON(http.StatusOK, estadisticas)
}
