package store

import (
	"math/rand"

	"github.com/RodMac08/WellBloomBE/models"
)

const selectFraseConEmocion = "f.id_frase, f.frase, f.autor, f.id_emocion, e.nombre_emocion"

// ListarFrases devuelve todas las frases con el nombre de su emoción
func (s *Store) ListarFrases() ([]models.FraseConEmocion, error) {
	frases := []models.FraseConEmocion{}
	err := s.db.Table("Frases f").
		Select(selectFraseConEmocion).
		Joins("JOIN Emocion e ON f.id_emocion = e.id_emocion").
		Scan(&frases).Error
	if err != nil {
		return nil, err
	}
	return frases, nil
}

// CrearFrase inserta la frase tras verificar que la emoción existe
func (s *Store) CrearFrase(req models.CrearFraseRequest) (*models.FraseConEmocion, error) {
	if err := s.verificarEmocion(req.IDEmocion); err != nil {
		return nil, err
	}

	frase := models.Frase{
		Frase:     req.Frase,
		Autor:     req.Autor,
		IDEmocion: req.IDEmocion,
	}
	if err := s.db.Create(&frase).Error; err != nil {
		return nil, err
	}
	return s.fraseConEmocion(frase.ID)
}

// FrasesPorEmocion lista las frases de una emoción
func (s *Store) FrasesPorEmocion(idEmocion uint) ([]models.FraseConEmocion, error) {
	frases := []models.FraseConEmocion{}
	err := s.db.Table("Frases f").
		Select(selectFraseConEmocion).
		Joins("JOIN Emocion e ON f.id_emocion = e.id_emocion").
		Where("f.id_emocion = ?", idEmocion).
		Scan(&frases).Error
	if err != nil {
		return nil, err
	}
	return frases, nil
}

// FraseAleatoria escoge al azar una frase de la emoción
func (s *Store) FraseAleatoria(idEmocion uint) (*models.FraseConEmocion, error) {
	var total int64
	if err := s.db.Model(&models.Frase{}).Where("id_emocion = ?", idEmocion).Count(&total).Error; err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNoEncontrado
	}

	var frase models.FraseConEmocion
	err := s.db.Table("Frases f").
		Select(selectFraseConEmocion).
		Joins("JOIN Emocion e ON f.id_emocion = e.id_emocion").
		Where("f.id_emocion = ?", idEmocion).
		Offset(rand.Intn(int(total))).
		Limit(1).
		Scan(&frase).Error
	if err != nil {
		return nil, err
	}
	return &frase, nil
}

// ActualizarFrase sobrescribe la frase y la relee con su emoción
func (s *Store) ActualizarFrase(id uint, req models.CrearFraseRequest) (*models.FraseConEmocion, error) {
	var existente models.Frase
	if err := s.db.First(&existente, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	if err := s.verificarEmocion(req.IDEmocion); err != nil {
		return nil, err
	}

	cambios := map[string]interface{}{
		"frase":      req.Frase,
		"autor":      req.Autor,
		"id_emocion": req.IDEmocion,
	}
	if err := s.db.Model(&existente).Updates(cambios).Error; err != nil {
		return nil, err
	}
	return s.fraseConEmocion(id)
}

// EliminarFrase borra la frase
func (s *Store) EliminarFrase(id uint) error {
	res := s.db.Delete(&models.Frase{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// BuscarFrases busca por subcadena del texto o del autor
func (s *Store) BuscarFrases(consulta string) ([]models.FraseConEmocion, error) {
	frases := []models.FraseConEmocion{}
	patron := "%" + consulta + "%"
	err := s.db.Table("Frases f").
		Select(selectFraseConEmocion).
		Joins("JOIN Emocion e ON f.id_emocion = e.id_emocion").
		Where("f.frase LIKE ? OR f.autor LIKE ?", patron, patron).
		Scan(&frases).Error
	if err != nil {
		return nil, err
	}
	return frases, nil
}

func (s *Store) verificarEmocion(idEmocion uint) error {
	var emociones int64
	if err := s.db.Model(&models.Emocion{}).Where("id_emocion = ?", idEmocion).Count(&emociones).Error; err != nil {
		return err
	}
	if emociones == 0 {
		return errorDeCampo("id_emocion", "La emoción no existe")
	}
	return nil
}

func (s *Store) fraseConEmocion(id uint) (*models.FraseConEmocion, error) {
	var frase models.FraseConEmocion
	res := s.db.Table("Frases f").
		Select(selectFraseConEmocion).
		Joins("JOIN Emocion e ON f.id_emocion = e.id_emocion").
		Where("f.id_frase = ?", id).
		Scan(&frase)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNoEncontrado
	}
	return &frase, nil
}
