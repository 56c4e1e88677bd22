package store

import (
	"github.com/RodMac08/WellBloomBE/models"
)

// ListarEmociones devuelve una página de emociones y el total independiente
// de la ventana
func (s *Store) ListarEmociones(pagina, limit int) ([]models.Emocion, int64, error) {
	if pagina <= 0 {
		pagina = 1
	}
	if limit <= 0 {
		limit = 10
	}

	var total int64
	if err := s.db.Model(&models.Emocion{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	emociones := []models.Emocion{}
	err := s.db.Order("id_emocion").Limit(limit).Offset((pagina - 1) * limit).Find(&emociones).Error
	if err != nil {
		return nil, 0, err
	}
	return emociones, total, nil
}

// ObtenerEmocion busca una emoción por id
func (s *Store) ObtenerEmocion(id uint) (*models.Emocion, error) {
	var emocion models.Emocion
	if err := s.db.First(&emocion, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &emocion, nil
}

// CrearEmocion inserta la emoción rechazando nombres duplicados
func (s *Store) CrearEmocion(req models.CrearEmocionRequest) (*models.Emocion, error) {
	var repetidas int64
	if err := s.db.Model(&models.Emocion{}).Where("nombre_emocion = ?", req.Nombre).Count(&repetidas).Error; err != nil {
		return nil, err
	}
	if repetidas > 0 {
		return nil, &ErrorConflicto{Mensaje: "Esta emoción ya existe"}
	}

	emocion := models.Emocion{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Puntaje:     req.Puntaje,
	}
	if err := s.db.Create(&emocion).Error; err != nil {
		return nil, err
	}

	var creada models.Emocion
	if err := s.db.First(&creada, emocion.ID).Error; err != nil {
		return nil, err
	}
	return &creada, nil
}

// ActualizarEmocion sobrescribe la emoción manteniendo la unicidad del nombre
func (s *Store) ActualizarEmocion(id uint, req models.CrearEmocionRequest) (*models.Emocion, error) {
	var existente models.Emocion
	if err := s.db.First(&existente, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	var repetidas int64
	err := s.db.Model(&models.Emocion{}).
		Where("nombre_emocion = ? AND id_emocion != ?", req.Nombre, id).
		Count(&repetidas).Error
	if err != nil {
		return nil, err
	}
	if repetidas > 0 {
		return nil, &ErrorConflicto{Mensaje: "Esta emoción ya existe"}
	}

	cambios := map[string]interface{}{
		"nombre_emocion":  req.Nombre,
		"descripcion":     req.Descripcion,
		"puntaje_emocion": req.Puntaje,
	}
	if err := s.db.Model(&existente).Updates(cambios).Error; err != nil {
		return nil, err
	}

	var actualizada models.Emocion
	if err := s.db.First(&actualizada, id).Error; err != nil {
		return nil, err
	}
	return &actualizada, nil
}

// EliminarEmocion borra la emoción siempre que no tenga registros asociados
func (s *Store) EliminarEmocion(id uint) error {
	var registros int64
	if err := s.db.Model(&models.RegistroEmocion{}).Where("id_emocion = ?", id).Count(&registros).Error; err != nil {
		return err
	}
	if registros > 0 {
		return &ErrorDependencia{Mensaje: "No se puede eliminar: existen registros asociados"}
	}

	res := s.db.Delete(&models.Emocion{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// FrasesDeEmocion devuelve las frases de la emoción; la lista vacía es un
// resultado válido
func (s *Store) FrasesDeEmocion(id uint) ([]models.Frase, error) {
	frases := []models.Frase{}
	if err := s.db.Where("id_emocion = ?", id).Find(&frases).Error; err != nil {
		return nil, err
	}
	return frases, nil
}
