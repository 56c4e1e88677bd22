package store

import (
	"testing"

	"github.com/RodMac08/WellBloomBE/config"
	"github.com/RodMac08/WellBloomBE/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore levanta un esquema completo en sqlite en memoria
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Una sola conexión: cada conexión de sqlite :memory: es una base distinta
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrarDB(db))
	return New(db)
}

func crearUsuarioDePrueba(t *testing.T, s *Store, correo string) *models.Usuario {
	t.Helper()
	usuario, err := s.CrearUsuario(models.CrearUsuarioRequest{
		Nombre:     "Usuario de prueba",
		Correo:     correo,
		Contrasena: "contraseña123",
		Seccion:    "3A",
	}, "$2a$10$digestdepruebadigestdepruebadigestdeprueba")
	require.NoError(t, err)
	return usuario
}

func crearEmocionDePrueba(t *testing.T, s *Store, nombre string) *models.Emocion {
	t.Helper()
	puntaje := 7
	emocion, err := s.CrearEmocion(models.CrearEmocionRequest{
		Nombre:      nombre,
		Descripcion: "descripción de " + nombre,
		Puntaje:     &puntaje,
	})
	require.NoError(t, err)
	return emocion
}

func crearActividadDePrueba(t *testing.T, s *Store, nombre string) *models.Actividad {
	t.Helper()
	tiempo := 15
	actividad, err := s.CrearActividad(models.CrearActividadRequest{
		Nombre:      nombre,
		Descripcion: "descripción de " + nombre,
		Tiempo:      &tiempo,
	})
	require.NoError(t, err)
	return actividad
}

func TestPaginaNormalizar(t *testing.T) {
	p := Pagina{}.Normalizar()
	require.Equal(t, 10, p.Limit)
	require.Equal(t, 0, p.Offset)

	p = Pagina{Limit: -5, Offset: -3}.Normalizar()
	require.Equal(t, 10, p.Limit)
	require.Equal(t, 0, p.Offset)

	p = Pagina{Limit: 25, Offset: 50}.Normalizar()
	require.Equal(t, 25, p.Limit)
	require.Equal(t, 50, p.Offset)
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Ping())
}
