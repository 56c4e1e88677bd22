package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/gin-gonic/gin"
)

// ReporteController maneja los reportes atendidos por administradores
type ReporteController struct {
	store *store.Store
}

func NewReporteController(s *store.Store) *ReporteController {
	return &ReporteController{store: s}
}

// Create crea un reporte asignado a un administrador
func (rc *ReporteController) Create(c *gin.Context) {
	var req models.CrearReporteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	reporte, err := rc.store.CrearReporte(req)
	if err != nil {
		responderError(c, err, "Error al crear reporte")
		return
	}
	c.JSON(http.StatusCreated, reporte)
}

// GetAll lista reportes con filtros opcionales por estado y administrador
func (rc *ReporteController) GetAll(c *gin.Context) {
	var filtro store.FiltroReportes

	if v := c.Query("contestado"); v != "" {
		contestado, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "El filtro contestado debe ser true o false"})
			return
		}
		filtro.Contestado = &contestado
	}
	if v := c.Query("id_administrador"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
			return
		}
		idAdmin := uint(id)
		filtro.IDAdministrador = &idAdmin
	}

	pagina := paginaDeQuery(c)
	reportes, total, err := rc.store.ListarReportes(filtro, pagina)
	if err != nil {
		responderError(c, err, "Error al obtener reportes")
		return
	}

	c.JSON(http.StatusOK, models.ListaPaginada{
		Data: reportes,
		Pagination: models.Paginacion{
			Total:  total,
			Limit:  pagina.Limit,
			Offset: pagina.Offset,
		},
	})
}

// GetByID devuelve un reporte con los datos de su administrador
func (rc *ReporteController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reporte, err := rc.store.ObtenerReporte(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Reporte no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al obtener reporte")
		return
	}
	c.JSON(http.StatusOK, reporte)
}

// UpdateRespuesta registra la respuesta y la nota de un reporte
func (rc *ReporteController) UpdateRespuesta(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.ActualizarRespuestaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	reporte, err := rc.store.ActualizarRespuesta(id, req)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Reporte no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al actualizar reporte")
		return
	}
	c.JSON(http.StatusOK, reporte)
}

// Delete elimina un reporte
func (rc *ReporteController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := rc.store.EliminarReporte(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Reporte no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al eliminar reporte")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reporte eliminado correctamente"})
}

// GetEstadisticas agrupa los reportes por rol del administrador
func (rc *ReporteController) GetEstadisticas(c *gin.Context) {
	estadisticas, err := rc.store.EstadisticasReportes()
	if err != nil {
		responderError(c, err, "Error al obtener estadísticas")
		return
	}
	c.JSON(http.StatusOK, estadisticas)
}
