package store

import (
	"time"

	"github.com/RodMac08/WellBloomBE/models"
)

// ListarUsuarios devuelve todos los usuarios; el digest nunca se serializa
func (s *Store) ListarUsuarios() ([]models.Usuario, error) {
	usuarios := []models.Usuario{}
	if err := s.db.Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

// ObtenerUsuario busca un usuario por id
func (s *Store) ObtenerUsuario(id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := s.db.First(&usuario, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &usuario, nil
}

// CrearUsuario inserta el usuario con la contraseña ya hasheada por el
// llamador; el correo debe ser único
func (s *Store) CrearUsuario(req models.CrearUsuarioRequest, digest string) (*models.Usuario, error) {
	var repetidos int64
	if err := s.db.Model(&models.Usuario{}).Where("correo = ?", req.Correo).Count(&repetidos).Error; err != nil {
		return nil, err
	}
	if repetidos > 0 {
		return nil, &ErrorConflicto{Mensaje: "El correo ya está registrado"}
	}

	usuario := models.Usuario{
		Nombre:     req.Nombre,
		Correo:     req.Correo,
		Contrasena: digest,
		Seccion:    req.Seccion,
	}
	if err := s.db.Create(&usuario).Error; err != nil {
		return nil, err
	}

	var creado models.Usuario
	if err := s.db.First(&creado, usuario.ID).Error; err != nil {
		return nil, err
	}
	return &creado, nil
}

// ActualizarUltimoIngreso sella la fecha de último ingreso del usuario
func (s *Store) ActualizarUltimoIngreso(id uint) error {
	var usuario models.Usuario
	if err := s.db.First(&usuario, id).Error; err != nil {
		if esNoEncontrado(err) {
			return ErrNoEncontrado
		}
		return err
	}
	ahora := time.Now()
	return s.db.Model(&usuario).Update("fecha_ultimo_ingreso", &ahora).Error
}

// ActualizarSeccion cambia la sección del usuario
func (s *Store) ActualizarSeccion(id uint, seccion string) error {
	var usuario models.Usuario
	if err := s.db.First(&usuario, id).Error; err != nil {
		if esNoEncontrado(err) {
			return ErrNoEncontrado
		}
		return err
	}
	return s.db.Model(&usuario).Update("seccion", seccion).Error
}
