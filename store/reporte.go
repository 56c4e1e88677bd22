package store

import (
	"time"

	"github.com/RodMac08/WellBloomBE/models"
)

// FiltroReportes filtros de igualdad del listado de reportes
type FiltroReportes struct {
	Contestado      *bool
	IDAdministrador *uint
}

func (f FiltroReportes) filtros() []filtro {
	var fs []filtro
	if f.Contestado != nil {
		if *f.Contestado {
			fs = append(fs, filtro{condicion: "r.respuesta IS NOT NULL"})
		} else {
			fs = append(fs, filtro{condicion: "r.respuesta IS NULL"})
		}
	}
	if f.IDAdministrador != nil {
		fs = append(fs, filtro{condicion: "r.id_administrador = ?", valor: *f.IDAdministrador})
	}
	return fs
}

// CrearReporte inserta el reporte tras verificar que el administrador existe
func (s *Store) CrearReporte(req models.CrearReporteRequest) (*models.ReporteConAdmin, error) {
	var admins int64
	if err := s.db.Model(&models.Administrador{}).Where("id_administrador = ?", req.IDAdministrador).Count(&admins).Error; err != nil {
		return nil, err
	}
	if admins == 0 {
		return nil, errorDeCampo("id_administrador", "El administrador no existe")
	}

	reporte := models.Reporte{
		IDAdministrador: req.IDAdministrador,
		Pregunta:        req.Pregunta,
		Respuesta:       req.Respuesta,
		Nota:            req.Nota,
	}
	if err := s.db.Create(&reporte).Error; err != nil {
		return nil, err
	}
	return s.reporteConAdmin(reporte.ID, false)
}

// ListarReportes devuelve una página de reportes aplicando los filtros, con
// el total calculado sobre el mismo filtro e independiente de la ventana
func (s *Store) ListarReportes(f FiltroReportes, pagina Pagina) ([]models.ReporteConAdmin, int64, error) {
	pagina = pagina.Normalizar()
	fs := f.filtros()

	var total int64
	countQ := s.db.Table("Reporte r")
	if err := aplicarFiltros(countQ, fs).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	reportes := []models.ReporteConAdmin{}
	q := s.db.Table("Reporte r").
		Select("r.id_reporte, r.id_administrador, r.pregunta, r.respuesta, r.nota, r.fecha_creacion, r.fecha_actualizacion, a.nombre AS admin_nombre, a.rol AS admin_rol").
		Joins("JOIN Administrador a ON r.id_administrador = a.id_administrador")
	err := aplicarFiltros(q, fs).
		Order("r.id_reporte DESC").
		Limit(pagina.Limit).
		Offset(pagina.Offset).
		Scan(&reportes).Error
	if err != nil {
		return nil, 0, err
	}
	return reportes, total, nil
}

// ObtenerReporte devuelve el reporte con los datos de su administrador
func (s *Store) ObtenerReporte(id uint) (*models.ReporteConAdmin, error) {
	return s.reporteConAdmin(id, true)
}

// ActualizarRespuesta contesta el reporte y sella la fecha de actualización
func (s *Store) ActualizarRespuesta(id uint, req models.ActualizarRespuestaRequest) (*models.Reporte, error) {
	var existente models.Reporte
	if err := s.db.First(&existente, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	cambios := map[string]interface{}{
		"respuesta":           req.Respuesta,
		"nota":                req.Nota,
		"fecha_actualizacion": time.Now(),
	}
	if err := s.db.Model(&existente).Updates(cambios).Error; err != nil {
		return nil, err
	}

	var actualizado models.Reporte
	if err := s.db.First(&actualizado, id).Error; err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// EliminarReporte borra el reporte
func (s *Store) EliminarReporte(id uint) error {
	res := s.db.Delete(&models.Reporte{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// EstadisticasReportes cuenta reportes totales, contestados y pendientes por
// rol del administrador
func (s *Store) EstadisticasReportes() ([]models.EstadisticaReportes, error) {
	stats := []models.EstadisticaReportes{}
	err := s.db.Table("Reporte r").
		Select("a.rol, COUNT(*) AS total_reportes, COUNT(r.respuesta) AS reportes_contestados, COUNT(CASE WHEN r.respuesta IS NULL THEN 1 END) AS reportes_pendientes").
		Joins("JOIN Administrador a ON r.id_administrador = a.id_administrador").
		Group("a.rol").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) reporteConAdmin(id uint, conCorreo bool) (*models.ReporteConAdmin, error) {
	columnas := "r.id_reporte, r.id_administrador, r.pregunta, r.respuesta, r.nota, r.fecha_creacion, r.fecha_actualizacion, a.nombre AS admin_nombre, a.rol AS admin_rol"
	if conCorreo {
		columnas += ", a.correo AS admin_correo"
	}

	var reporte models.ReporteConAdmin
	res := s.db.Table("Reporte r").
		Select(columnas).
		Joins("JOIN Administrador a ON r.id_administrador = a.id_administrador").
		Where("r.id_reporte = ?", id).
		Scan(&reporte)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNoEncontrado
	}
	return &reporte, nil
}
