package store

import (
	"time"

	"github.com/RodMac08/WellBloomBE/models"
)

// RegistrarAdministrador inserta el administrador con la contraseña ya
// hasheada por el llamador; el correo debe ser único
func (s *Store) RegistrarAdministrador(req models.RegistrarAdminRequest, digest string) (*models.Administrador, error) {
	var repetidos int64
	if err := s.db.Model(&models.Administrador{}).Where("correo = ?", req.Correo).Count(&repetidos).Error; err != nil {
		return nil, err
	}
	if repetidos > 0 {
		return nil, &ErrorConflicto{Mensaje: "El correo ya está registrado"}
	}

	rol := req.Rol
	if rol == "" {
		rol = models.RolModerador
	}

	admin := models.Administrador{
		Nombre:     req.Nombre,
		Correo:     req.Correo,
		Contrasena: digest,
		Rol:        rol,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, err
	}

	var creado models.Administrador
	if err := s.db.First(&creado, admin.ID).Error; err != nil {
		return nil, err
	}
	return &creado, nil
}

// AdministradorPorCorreo busca un administrador por correo; expone el digest
// almacenado para que el llamador compare credenciales
func (s *Store) AdministradorPorCorreo(correo string) (*models.Administrador, error) {
	var admin models.Administrador
	if err := s.db.Where("correo = ?", correo).First(&admin).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &admin, nil
}

// RegistrarAcceso sella el último acceso del administrador; efecto colateral
// de una autenticación exitosa
func (s *Store) RegistrarAcceso(id uint) error {
	ahora := time.Now()
	return s.db.Model(&models.Administrador{}).Where("id_administrador = ?", id).
		Update("ultimo_acceso", &ahora).Error
}

// ListarAdministradores devuelve todos los administradores; el digest nunca
// se serializa
func (s *Store) ListarAdministradores() ([]models.Administrador, error) {
	admins := []models.Administrador{}
	if err := s.db.Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// ObtenerAdministrador busca un administrador por id
func (s *Store) ObtenerAdministrador(id uint) (*models.Administrador, error) {
	var admin models.Administrador
	if err := s.db.First(&admin, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &admin, nil
}

// ActualizarAdministrador aplica un parche parcial; digest viene vacío cuando
// no se proporcionó contraseña nueva y en ese caso el hash almacenado queda
// intacto
func (s *Store) ActualizarAdministrador(id uint, req models.ActualizarAdminRequest, digest string) (*models.Administrador, error) {
	var existente models.Administrador
	if err := s.db.First(&existente, id).Error; err != nil {
		if esNoEncontrado(err) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}

	if req.Correo != nil {
		var repetidos int64
		err := s.db.Model(&models.Administrador{}).
			Where("correo = ? AND id_administrador != ?", *req.Correo, id).
			Count(&repetidos).Error
		if err != nil {
			return nil, err
		}
		if repetidos > 0 {
			return nil, &ErrorConflicto{Mensaje: "El correo ya está registrado"}
		}
	}

	cambios := map[string]interface{}{}
	if req.Nombre != nil {
		cambios["nombre"] = *req.Nombre
	}
	if req.Correo != nil {
		cambios["correo"] = *req.Correo
	}
	if req.Rol != nil {
		cambios["rol"] = *req.Rol
	}
	if digest != "" {
		cambios["contrasena"] = digest
	}
	if len(cambios) > 0 {
		if err := s.db.Model(&existente).Updates(cambios).Error; err != nil {
			return nil, err
		}
	}

	var actualizado models.Administrador
	if err := s.db.First(&actualizado, id).Error; err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// EliminarAdministrador borra el administrador salvo que sea el único
// superadmin o que todavía tenga reportes asignados
func (s *Store) EliminarAdministrador(id uint) error {
	var objetivo models.Administrador
	if err := s.db.First(&objetivo, id).Error; err != nil {
		if esNoEncontrado(err) {
			return ErrNoEncontrado
		}
		return err
	}

	if objetivo.Rol == models.RolSuperadmin {
		var superadmins int64
		err := s.db.Model(&models.Administrador{}).Where("rol = ?", models.RolSuperadmin).Count(&superadmins).Error
		if err != nil {
			return err
		}
		if superadmins <= 1 {
			return &ErrorDependencia{Mensaje: "No se puede eliminar al único superadmin"}
		}
	}

	var reportes int64
	if err := s.db.Model(&models.Reporte{}).Where("id_administrador = ?", id).Count(&reportes).Error; err != nil {
		return err
	}
	if reportes > 0 {
		return &ErrorDependencia{Mensaje: "Reasigne los reportes antes de eliminar este administrador"}
	}

	return s.db.Delete(&models.Administrador{}, id).Error
}
