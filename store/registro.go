package store

import (
	"github.com/RodMac08/WellBloomBE/models"
)

// ListarRegistros devuelve todos los registros emocionales con los datos de
// usuario y emoción
func (s *Store) ListarRegistros() ([]models.RegistroConDatos, error) {
	registros := []models.RegistroConDatos{}
	err := s.db.Table("RegistroEmocion re").
		Select("re.id_registro, re.hora_foto, u.id_usuario, u.nombre AS usuario_nombre, e.id_emocion, e.nombre_emocion").
		Joins("JOIN Usuarios u ON re.id_usuario = u.id_usuario").
		Joins("JOIN Emocion e ON re.id_emocion = e.id_emocion").
		Scan(&registros).Error
	if err != nil {
		return nil, err
	}
	return registros, nil
}

// CrearRegistro inserta un registro emocional tras verificar que el usuario
// y la emoción existen, y lo relee con sus datos relacionados
func (s *Store) CrearRegistro(req models.CrearRegistroRequest) (*models.RegistroConDatos, error) {
	var usuarios int64
	if err := s.db.Model(&models.Usuario{}).Where("id_usuario = ?", req.IDUsuario).Count(&usuarios).Error; err != nil {
		return nil, err
	}
	if usuarios == 0 {
		return nil, ErrUsuarioNoEncontrado
	}

	var emociones int64
	if err := s.db.Model(&models.Emocion{}).Where("id_emocion = ?", req.IDEmocion).Count(&emociones).Error; err != nil {
		return nil, err
	}
	if emociones == 0 {
		return nil, ErrEmocionNoEncontrada
	}

	registro := models.RegistroEmocion{
		IDUsuario: req.IDUsuario,
		IDEmocion: req.IDEmocion,
	}
	if err := s.db.Create(&registro).Error; err != nil {
		return nil, err
	}

	var creado models.RegistroConDatos
	err := s.db.Table("RegistroEmocion re").
		Select("re.id_registro, re.hora_foto, u.id_usuario, u.nombre AS usuario_nombre, e.id_emocion, e.nombre_emocion").
		Joins("JOIN Usuarios u ON re.id_usuario = u.id_usuario").
		Joins("JOIN Emocion e ON re.id_emocion = e.id_emocion").
		Where("re.id_registro = ?", registro.ID).
		Scan(&creado).Error
	if err != nil {
		return nil, err
	}
	return &creado, nil
}

// RegistrosPorUsuario devuelve una página del historial de registros del
// usuario, del más reciente al más antiguo, con el total independiente
func (s *Store) RegistrosPorUsuario(idUsuario uint, pagina Pagina) ([]models.RegistroDeUsuario, int64, error) {
	pagina = pagina.Normalizar()

	var total int64
	err := s.db.Model(&models.RegistroEmocion{}).Where("id_usuario = ?", idUsuario).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	registros := []models.RegistroDeUsuario{}
	err = s.db.Table("RegistroEmocion re").
		Select("re.id_registro, re.hora_foto, e.nombre_emocion, e.puntaje_emocion").
		Joins("JOIN Emocion e ON re.id_emocion = e.id_emocion").
		Where("re.id_usuario = ?", idUsuario).
		Order("re.hora_foto DESC").
		Limit(pagina.Limit).
		Offset(pagina.Offset).
		Scan(&registros).Error
	if err != nil {
		return nil, 0, err
	}
	return registros, total, nil
}

// EliminarRegistro borra el registro emocional
func (s *Store) EliminarRegistro(id uint) error {
	res := s.db.Delete(&models.RegistroEmocion{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// EstadisticasUsuario cuenta los registros del usuario por emoción junto con
// el promedio de puntaje, ordenado del más frecuente al menos frecuente
func (s *Store) EstadisticasUsuario(idUsuario uint) ([]models.EstadisticaEmocion, error) {
	stats := []models.EstadisticaEmocion{}
	err := s.db.Table("RegistroEmocion re").
		Select("e.nombre_emocion, COUNT(*) AS total, AVG(e.puntaje_emocion) AS promedio_puntaje").
		Joins("JOIN Emocion e ON re.id_emocion = e.id_emocion").
		Where("re.id_usuario = ?", idUsuario).
		Group("e.id_emocion").
		Order("total DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
