package store

import (
	"github.com/RodMac08/WellBloomBE/models"
)

// ListarActividades devuelve todas las actividades con el conteo de
// ejercicios y el id de la meditación asociada, si la hay
func (s *Store) ListarActividades() ([]models.ActividadResumen, error) {
	var actividades []models.ActividadResumen
	err := s.db.Table("Actividad a").
		Select("a.id_actividad, a.nombre_actividad, a.descripcion, a.tiempo_actividad, COUNT(e.id_ejercicio) AS total_ejercicios, m.id_meditacion").
		Joins("LEFT JOIN Ejercicio e ON a.id_actividad = e.id_actividad").
		Joins("LEFT JOIN Meditacion m ON a.id_actividad = m.id_actividad").
		Group("a.id_actividad").
		Scan(&actividades).Error
	if err != nil {
		return nil, err
	}
	if actividades == nil {
		actividades = []models.ActividadResumen{}
	}
	return actividades, nil
}

// CrearActividad inserta la actividad y relee la fila persistida
func (s *Store) CrearActividad(req models.CrearActividadRequest) (*models.Actividad, error) {
	actividad := models.Actividad{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Tiempo:      req.Tiempo,
	}
	if err := s.db.Create(&actividad).Error; err != nil {
		return nil, err
	}

	var creada models.Actividad
	if err := s.db.First(&creada, actividad.ID).Error; err != nil {
		return nil, err
	}
	return &creada, nil
}

// ObtenerActividad devuelve la actividad con sus ejercicios y meditación
func (s *Store) ObtenerActividad(id uint) (*models.ActividadDetalle, error) {
	var actividad models.Actividad
	if err := s.db.First(&actividad, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	detalle := models.ActividadDetalle{Actividad: actividad, Ejercicios: []models.Ejercicio{}}
	if err := s.db.Where("id_actividad = ?", id).Find(&detalle.Ejercicios).Error; err != nil {
		return nil, err
	}

	var meditacion models.Meditacion
	err := s.db.Where("id_actividad = ?", id).First(&meditacion).Error
	switch {
	case err == nil:
		detalle.Meditacion = &meditacion
	case !esNoEncontrado(err):
		return nil, err
	}
	return &detalle, nil
}

// ActualizarActividad sobrescribe los campos de la actividad y la relee
func (s *Store) ActualizarActividad(id uint, req models.CrearActividadRequest) (*models.Actividad, error) {
	var existente models.Actividad
	if err := s.db.First(&existente, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	cambios := map[string]interface{}{
		"nombre_actividad": req.Nombre,
		"descripcion":      req.Descripcion,
		"tiempo_actividad": req.Tiempo,
	}
	if err := s.db.Model(&existente).Updates(cambios).Error; err != nil {
		return nil, err
	}

	var actualizada models.Actividad
	if err := s.db.First(&actualizada, id).Error; err != nil {
		return nil, err
	}
	return &actualizada, nil
}

// EliminarActividad borra la actividad siempre que no tenga ejercicios ni
// meditaciones asociadas
func (s *Store) EliminarActividad(id uint) error {
	var ejercicios int64
	if err := s.db.Model(&models.Ejercicio{}).Where("id_actividad = ?", id).Count(&ejercicios).Error; err != nil {
		return err
	}
	var meditaciones int64
	if err := s.db.Model(&models.Meditacion{}).Where("id_actividad = ?", id).Count(&meditaciones).Error; err != nil {
		return err
	}
	if ejercicios > 0 || meditaciones > 0 {
		return &ErrorDependencia{Mensaje: "No se puede eliminar: tiene ejercicios o meditaciones asociadas"}
	}

	res := s.db.Delete(&models.Actividad{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// BuscarActividades busca por subcadena del nombre, sin distinguir mayúsculas
func (s *Store) BuscarActividades(consulta string) ([]models.Actividad, error) {
	actividades := []models.Actividad{}
	err := s.db.Where("nombre_actividad LIKE ?", "%"+consulta+"%").Find(&actividades).Error
	if err != nil {
		return nil, err
	}
	return actividades, nil
}
