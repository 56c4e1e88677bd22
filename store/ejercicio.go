package store

import (
	"github.com/RodMac08/WellBloomBE/models"
)

const selectEjercicioConActividad = "e.id_ejercicio, e.id_actividad, e.turno, e.tiempo, e.completado, a.nombre_actividad"

// CrearEjercicio inserta el ejercicio tras verificar que la actividad existe
// y relee la fila junto con el nombre de la actividad
func (s *Store) CrearEjercicio(req models.CrearEjercicioRequest) (*models.EjercicioConActividad, error) {
	var actividades int64
	if err := s.db.Model(&models.Actividad{}).Where("id_actividad = ?", req.IDActividad).Count(&actividades).Error; err != nil {
		return nil, err
	}
	if actividades == 0 {
		return nil, errorDeCampo("id_actividad", "La actividad no existe")
	}

	ejercicio := models.Ejercicio{
		IDActividad: req.IDActividad,
		Turno:       req.Turno,
		Tiempo:      req.Tiempo,
	}
	if err := s.db.Create(&ejercicio).Error; err != nil {
		return nil, err
	}
	return s.ejercicioConActividad(ejercicio.ID)
}

// EjerciciosPorActividad lista los ejercicios de una actividad
func (s *Store) EjerciciosPorActividad(idActividad uint) ([]models.EjercicioConActividad, error) {
	ejercicios := []models.EjercicioConActividad{}
	err := s.db.Table("Ejercicio e").
		Select(selectEjercicioConActividad).
		Joins("JOIN Actividad a ON e.id_actividad = a.id_actividad").
		Where("e.id_actividad = ?", idActividad).
		Scan(&ejercicios).Error
	if err != nil {
		return nil, err
	}
	return ejercicios, nil
}

// ActualizarEjercicio aplica un parche parcial: solo cambia los campos que
// vienen en la petición
func (s *Store) ActualizarEjercicio(id uint, req models.ActualizarEjercicioRequest) (*models.EjercicioConActividad, error) {
	var existente models.Ejercicio
	if err := s.db.First(&existente, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	cambios := map[string]interface{}{}
	if req.Turno != nil {
		cambios["turno"] = *req.Turno
	}
	if req.Tiempo != nil {
		cambios["tiempo"] = *req.Tiempo
	}
	if len(cambios) > 0 {
		if err := s.db.Model(&existente).Updates(cambios).Error; err != nil {
			return nil, err
		}
	}
	return s.ejercicioConActividad(id)
}

// CompletarEjercicio marca el ejercicio como completado; repetir la llamada
// es inocuo y el estado nunca regresa a pendiente
func (s *Store) CompletarEjercicio(id uint) error {
	var ejercicio models.Ejercicio
	if err := s.db.First(&ejercicio, id).Error; err != nil {
		if esNoEncontrado(err) {
			return ErrNoEncontrado
		}
		return err
	}
	if ejercicio.Completado {
		return nil
	}
	return s.db.Model(&ejercicio).Update("completado", true).Error
}

// EliminarEjercicio borra el ejercicio
func (s *Store) EliminarEjercicio(id uint) error {
	res := s.db.Delete(&models.Ejercicio{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// EjerciciosPorTurno lista los ejercicios de un turno dado
func (s *Store) EjerciciosPorTurno(turno string) ([]models.EjercicioConActividad, error) {
	ejercicios := []models.EjercicioConActividad{}
	err := s.db.Table("Ejercicio e").
		Select(selectEjercicioConActividad).
		Joins("JOIN Actividad a ON e.id_actividad = a.id_actividad").
		Where("e.turno = ?", turno).
		Scan(&ejercicios).Error
	if err != nil {
		return nil, err
	}
	return ejercicios, nil
}

// EstadisticasPorTurno cuenta los ejercicios por turno, del más cargado al
// menos cargado
func (s *Store) EstadisticasPorTurno() ([]models.EstadisticaTurno, error) {
	stats := []models.EstadisticaTurno{}
	err := s.db.Table("Ejercicio").
		Select("turno, COUNT(*) AS total").
		Where("turno IS NOT NULL").
		Group("turno").
		Order("total DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) ejercicioConActividad(id uint) (*models.EjercicioConActividad, error) {
	var ejercicio models.EjercicioConActividad
	res := s.db.Table("Ejercicio e").
		Select(selectEjercicioConActividad).
		Joins("JOIN Actividad a ON e.id_actividad = a.id_actividad").
		Where("e.id_ejercicio = ?", id).
		Scan(&ejercicio)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNoEncontrado
	}
	return &ejercicio, nil
}
