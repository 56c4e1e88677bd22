package store

import (
	"testing"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearEjercicioSinActividad(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CrearEjercicio(models.CrearEjercicioRequest{IDActividad: 999})
	var validacion *ErrorValidacion
	require.ErrorAs(t, err, &validacion)
	require.Len(t, validacion.Errores, 1)
	assert.Equal(t, "id_actividad", validacion.Errores[0].Campo)
	assert.Equal(t, "La actividad no existe", validacion.Errores[0].Mensaje)
}

func TestCompletarEjercicioEsIdempotente(t *testing.T) {
	s := newTestStore(t)
	actividad := crearActividadDePrueba(t, s, "Respiración")

	ejercicio, err := s.CrearEjercicio(models.CrearEjercicioRequest{IDActividad: actividad.ID})
	require.NoError(t, err)
	assert.False(t, ejercicio.Completado)

	require.NoError(t, s.CompletarEjercicio(ejercicio.ID))
	// La segunda llamada no falla ni cambia nada
	require.NoError(t, s.CompletarEjercicio(ejercicio.ID))

	releido, err := s.ejercicioConActividad(ejercicio.ID)
	require.NoError(t, err)
	assert.True(t, releido.Completado)
}

func TestCompletarEjercicioInexistente(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.CompletarEjercicio(999), ErrNoEncontrado)
}

func TestActualizarEjercicioParcial(t *testing.T) {
	s := newTestStore(t)
	actividad := crearActividadDePrueba(t, s, "Estiramientos")

	turno := models.TurnoManana
	tiempo := 10
	ejercicio, err := s.CrearEjercicio(models.CrearEjercicioRequest{
		IDActividad: actividad.ID,
		Turno:       &turno,
		Tiempo:      &tiempo,
	})
	require.NoError(t, err)

	// Solo cambia el turno; el tiempo se conserva
	nuevoTurno := models.TurnoNoche
	actualizado, err := s.ActualizarEjercicio(ejercicio.ID, models.ActualizarEjercicioRequest{Turno: &nuevoTurno})
	require.NoError(t, err)
	require.NotNil(t, actualizado.Turno)
	assert.Equal(t, models.TurnoNoche, *actualizado.Turno)
	require.NotNil(t, actualizado.Tiempo)
	assert.Equal(t, 10, *actualizado.Tiempo)

	// Un parche vacío deja la fila intacta
	intacto, err := s.ActualizarEjercicio(ejercicio.ID, models.ActualizarEjercicioRequest{})
	require.NoError(t, err)
	assert.Equal(t, *actualizado.Turno, *intacto.Turno)
}

func TestEjerciciosPorTurno(t *testing.T) {
	s := newTestStore(t)
	actividad := crearActividadDePrueba(t, s, "Rutina matutina")

	manana := models.TurnoManana
	tarde := models.TurnoTarde
	for _, turno := range []*string{&manana, &manana, &tarde, nil} {
		_, err := s.CrearEjercicio(models.CrearEjercicioRequest{IDActividad: actividad.ID, Turno: turno})
		require.NoError(t, err)
	}

	matutinos, err := s.EjerciciosPorTurno(models.TurnoManana)
	require.NoError(t, err)
	assert.Len(t, matutinos, 2)
	for _, e := range matutinos {
		assert.Equal(t, "Rutina matutina", e.NombreActividad)
	}

	nocturnos, err := s.EjerciciosPorTurno(models.TurnoNoche)
	require.NoError(t, err)
	assert.Empty(t, nocturnos)
}

func TestEstadisticasPorTurno(t *testing.T) {
	s := newTestStore(t)
	actividad := crearActividadDePrueba(t, s, "Rutina")

	manana := models.TurnoManana
	noche := models.TurnoNoche
	for _, turno := range []*string{&manana, &manana, &manana, &noche, nil} {
		_, err := s.CrearEjercicio(models.CrearEjercicioRequest{IDActividad: actividad.ID, Turno: turno})
		require.NoError(t, err)
	}

	stats, err := s.EstadisticasPorTurno()
	require.NoError(t, err)
	// Los ejercicios sin turno no cuentan
	require.Len(t, stats, 2)
	assert.Equal(t, models.TurnoManana, stats[0].Turno)
	assert.EqualValues(t, 3, stats[0].Total)
	assert.Equal(t, models.TurnoNoche, stats[1].Turno)
	assert.EqualValues(t, 1, stats[1].Total)
}

func TestEliminarEjercicio(t *testing.T) {
	s := newTestStore(t)
	actividad := crearActividadDePrueba(t, s, "Rutina")
	ejercicio, err := s.CrearEjercicio(models.CrearEjercicioRequest{IDActividad: actividad.ID})
	require.NoError(t, err)

	require.NoError(t, s.EliminarEjercicio(ejercicio.ID))
	assert.ErrorIs(t, s.EliminarEjercicio(ejercicio.ID), ErrNoEncontrado)

	// Sin dependientes la actividad ya puede borrarse
	assert.NoError(t, s.EliminarActividad(actividad.ID))
}
