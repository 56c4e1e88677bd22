package store

import (
	"testing"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarAdministradorRolPorDefecto(t *testing.T) {
	s := newTestStore(t)

	admin, err := s.RegistrarAdministrador(models.RegistrarAdminRequest{
		Nombre: "Carmen",
		Correo: "carmen@wellbloom.mx",
	}, "digest")
	require.NoError(t, err)
	assert.Equal(t, models.RolModerador, admin.Rol)
	assert.Nil(t, admin.UltimoAcceso)
}

func TestRegistrarAdministradorCorreoDuplicado(t *testing.T) {
	s := newTestStore(t)
	crearAdminDePrueba(t, s, "carmen@wellbloom.mx", models.RolModerador)

	_, err := s.RegistrarAdministrador(models.RegistrarAdminRequest{
		Nombre: "Otra Carmen",
		Correo: "carmen@wellbloom.mx",
	}, "digest")
	var conflicto *ErrorConflicto
	require.ErrorAs(t, err, &conflicto)
	assert.Equal(t, "El correo ya está registrado", conflicto.Mensaje)

	var total int64
	require.NoError(t, s.db.Model(&models.Administrador{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestAdministradorPorCorreo(t *testing.T) {
	s := newTestStore(t)
	creado := crearAdminDePrueba(t, s, "carmen@wellbloom.mx", models.RolEditor)

	admin, err := s.AdministradorPorCorreo("carmen@wellbloom.mx")
	require.NoError(t, err)
	assert.Equal(t, creado.ID, admin.ID)
	// El digest queda disponible para comparar credenciales
	assert.NotEmpty(t, admin.Contrasena)

	_, err = s.AdministradorPorCorreo("nadie@wellbloom.mx")
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestRegistrarAcceso(t *testing.T) {
	s := newTestStore(t)
	admin := crearAdminDePrueba(t, s, "carmen@wellbloom.mx", models.RolModerador)
	require.Nil(t, admin.UltimoAcceso)

	require.NoError(t, s.RegistrarAcceso(admin.ID))

	releido, err := s.ObtenerAdministrador(admin.ID)
	require.NoError(t, err)
	assert.NotNil(t, releido.UltimoAcceso)
}

func TestActualizarAdministradorParcial(t *testing.T) {
	s := newTestStore(t)
	admin := crearAdminDePrueba(t, s, "carmen@wellbloom.mx", models.RolModerador)
	digestOriginal := admin.Contrasena

	// Sin contraseña nueva el hash almacenado no cambia
	nombre := "Carmen Díaz"
	actualizado, err := s.ActualizarAdministrador(admin.ID, models.ActualizarAdminRequest{Nombre: &nombre}, "")
	require.NoError(t, err)
	assert.Equal(t, "Carmen Díaz", actualizado.Nombre)
	assert.Equal(t, "carmen@wellbloom.mx", actualizado.Correo)
	assert.Equal(t, digestOriginal, actualizado.Contrasena)

	// Con digest nuevo sí se reemplaza
	conClave, err := s.ActualizarAdministrador(admin.ID, models.ActualizarAdminRequest{}, "digest-nuevo")
	require.NoError(t, err)
	assert.Equal(t, "digest-nuevo", conClave.Contrasena)

	_, err = s.ActualizarAdministrador(999, models.ActualizarAdminRequest{}, "")
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestActualizarAdministradorCorreoOcupado(t *testing.T) {
	s := newTestStore(t)
	crearAdminDePrueba(t, s, "carmen@wellbloom.mx", models.RolModerador)
	otro := crearAdminDePrueba(t, s, "diego@wellbloom.mx", models.RolEditor)

	ocupado := "carmen@wellbloom.mx"
	_, err := s.ActualizarAdministrador(otro.ID, models.ActualizarAdminRequest{Correo: &ocupado}, "")
	var conflicto *ErrorConflicto
	require.ErrorAs(t, err, &conflicto)

	// Conservar el propio correo no cuenta como duplicado
	propio := "diego@wellbloom.mx"
	_, err = s.ActualizarAdministrador(otro.ID, models.ActualizarAdminRequest{Correo: &propio}, "")
	assert.NoError(t, err)
}

func TestEliminarUnicoSuperadmin(t *testing.T) {
	s := newTestStore(t)
	superadmin := crearAdminDePrueba(t, s, "root@wellbloom.mx", models.RolSuperadmin)

	err := s.EliminarAdministrador(superadmin.ID)
	var dependencia *ErrorDependencia
	require.ErrorAs(t, err, &dependencia)
	assert.Equal(t, "No se puede eliminar al único superadmin", dependencia.Mensaje)

	// Con otro superadmin el borrado procede
	crearAdminDePrueba(t, s, "root2@wellbloom.mx", models.RolSuperadmin)
	assert.NoError(t, s.EliminarAdministrador(superadmin.ID))
}

func TestEliminarAdministradorConReportes(t *testing.T) {
	s := newTestStore(t)
	admin := crearAdminDePrueba(t, s, "mod@wellbloom.mx", models.RolModerador)
	reporte, err := s.CrearReporte(models.CrearReporteRequest{IDAdministrador: admin.ID, Pregunta: "¿Qué pasó?"})
	require.NoError(t, err)

	err = s.EliminarAdministrador(admin.ID)
	var dependencia *ErrorDependencia
	require.ErrorAs(t, err, &dependencia)
	assert.Equal(t, "Reasigne los reportes antes de eliminar este administrador", dependencia.Mensaje)

	// Sin reportes asignados ya puede borrarse
	require.NoError(t, s.EliminarReporte(reporte.ID))
	assert.NoError(t, s.EliminarAdministrador(admin.ID))
}

func TestEliminarAdministradorInexistente(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.EliminarAdministrador(999), ErrNoEncontrado)
}
