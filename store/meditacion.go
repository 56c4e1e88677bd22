package store

import (
	"github.com/RodMac08/WellBloomBE/models"
)

const selectMeditacionConActividad = "m.id_meditacion, m.id_actividad, m.tiempo_meditacion, m.completado, a.nombre_actividad"

// CrearMeditacion inserta la meditación tras verificar que la actividad
// existe y que todavía no tiene una meditación asociada
func (s *Store) CrearMeditacion(req models.CrearMeditacionRequest) (*models.MeditacionConActividad, error) {
	var actividades int64
	if err := s.db.Model(&models.Actividad{}).Where("id_actividad = ?", req.IDActividad).Count(&actividades).Error; err != nil {
		return nil, err
	}
	if actividades == 0 {
		return nil, errorDeCampo("id_actividad", "La actividad no existe")
	}

	var existentes int64
	if err := s.db.Model(&models.Meditacion{}).Where("id_actividad = ?", req.IDActividad).Count(&existentes).Error; err != nil {
		return nil, err
	}
	if existentes > 0 {
		return nil, &ErrorConflicto{Mensaje: "Esta actividad ya tiene una meditación asociada"}
	}

	meditacion := models.Meditacion{
		IDActividad: req.IDActividad,
		Tiempo:      req.Tiempo,
	}
	if err := s.db.Create(&meditacion).Error; err != nil {
		return nil, err
	}
	return s.meditacionConActividad(meditacion.ID, false)
}

// ObtenerMeditacion devuelve la meditación con los datos de su actividad
func (s *Store) ObtenerMeditacion(id uint) (*models.MeditacionConActividad, error) {
	return s.meditacionConActividad(id, true)
}

// MeditacionPorActividad devuelve la meditación asociada a una actividad
func (s *Store) MeditacionPorActividad(idActividad uint) (*models.MeditacionConActividad, error) {
	var meditacion models.MeditacionConActividad
	res := s.db.Table("Meditacion m").
		Select(selectMeditacionConActividad).
		Joins("JOIN Actividad a ON m.id_actividad = a.id_actividad").
		Where("m.id_actividad = ?", idActividad).
		Scan(&meditacion)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNoEncontrado
	}
	return &meditacion, nil
}

// ActualizarMeditacion aplica un parche parcial sobre la meditación
func (s *Store) ActualizarMeditacion(id uint, req models.ActualizarMeditacionRequest) (*models.MeditacionConActividad, error) {
	var existente models.Meditacion
	if err := s.db.First(&existente, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	if req.Tiempo != nil {
		if err := s.db.Model(&existente).Update("tiempo_meditacion", *req.Tiempo).Error; err != nil {
			return nil, err
		}
	}
	return s.meditacionConActividad(id, false)
}

// CompletarMeditacion marca la meditación como completada; la llamada es
// idempotente
func (s *Store) CompletarMeditacion(id uint) error {
	var meditacion models.Meditacion
	if err := s.db.First(&meditacion, id).Error; err != nil {
		if esNoEncontrado(err) {
			return ErrNoEncontrado
		}
		return err
	}
	if meditacion.Completado {
		return nil
	}
	return s.db.Model(&meditacion).Update("completado", true).Error
}

// EliminarMeditacion borra la meditación
func (s *Store) EliminarMeditacion(id uint) error {
	res := s.db.Delete(&models.Meditacion{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// MeditacionesCompletadas lista las meditaciones ya completadas
func (s *Store) MeditacionesCompletadas() ([]models.MeditacionConActividad, error) {
	meditaciones := []models.MeditacionConActividad{}
	err := s.db.Table("Meditacion m").
		Select(selectMeditacionConActividad).
		Joins("JOIN Actividad a ON m.id_actividad = a.id_actividad").
		Where("m.completado = ?", true).
		Scan(&meditaciones).Error
	if err != nil {
		return nil, err
	}
	return meditaciones, nil
}

func (s *Store) meditacionConActividad(id uint, conDescripcion bool) (*models.MeditacionConActividad, error) {
	columnas := selectMeditacionConActividad
	if conDescripcion {
		columnas += ", a.descripcion"
	}

	var meditacion models.MeditacionConActividad
	res := s.db.Table("Meditacion m").
		Select(columnas).
		Joins("JOIN Actividad a ON m.id_actividad = a.id_actividad").
		Where("m.id_meditacion = ?", id).
		Scan(&meditacion)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNoEncontrado
	}
	return &meditacion, nil
}
