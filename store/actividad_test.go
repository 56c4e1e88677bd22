package store

import (
	"testing"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObtenerActividadDetalle(t *testing.T) {
	s := newTestStore(t)
	actividad := crearActividadDePrueba(t, s, "Respiración profunda")

	turno := models.TurnoManana
	tiempo := 5
	_, err := s.CrearEjercicio(models.CrearEjercicioRequest{
		IDActividad: actividad.ID,
		Turno:       &turno,
		Tiempo:      &tiempo,
	})
	require.NoError(t, err)

	_, err = s.CrearMeditacion(models.CrearMeditacionRequest{IDActividad: actividad.ID, Tiempo: 10})
	require.NoError(t, err)

	detalle, err := s.ObtenerActividad(actividad.ID)
	require.NoError(t, err)
	assert.Equal(t, "Respiración profunda", detalle.Nombre)
	assert.Len(t, detalle.Ejercicios, 1)
	require.NotNil(t, detalle.Meditacion)
	assert.Equal(t, 10, detalle.Meditacion.Tiempo)
}

func TestObtenerActividadSinRelaciones(t *testing.T) {
	s := newTestStore(t)
	actividad := crearActividadDePrueba(t, s, "Caminata")

	detalle, err := s.ObtenerActividad(actividad.ID)
	require.NoError(t, err)
	assert.Empty(t, detalle.Ejercicios)
	assert.Nil(t, detalle.Meditacion)
}

func TestActualizarActividadBorraTiempo(t *testing.T) {
	s := newTestStore(t)
	actividad := crearActividadDePrueba(t, s, "Yoga")
	require.NotNil(t, actividad.Tiempo)

	// La actualización es un reemplazo completo: tiempo ausente queda en NULL
	actualizada, err := s.ActualizarActividad(actividad.ID, models.CrearActividadRequest{
		Nombre:      "Yoga restaurativo",
		Descripcion: "sesión suave",
	})
	require.NoError(t, err)
	assert.Equal(t, "Yoga restaurativo", actualizada.Nombre)
	assert.Nil(t, actualizada.Tiempo)
}

func TestEliminarActividadConDependientes(t *testing.T) {
	s := newTestStore(t)
	actividad := crearActividadDePrueba(t, s, "Estiramientos")

	_, err := s.CrearEjercicio(models.CrearEjercicioRequest{IDActividad: actividad.ID})
	require.NoError(t, err)

	err = s.EliminarActividad(actividad.ID)
	var dependencia *ErrorDependencia
	require.ErrorAs(t, err, &dependencia)
	assert.Equal(t, "No se puede eliminar: tiene ejercicios o meditaciones asociadas", dependencia.Mensaje)

	_, err = s.ObtenerActividad(actividad.ID)
	assert.NoError(t, err)
}

func TestEliminarActividadLibre(t *testing.T) {
	s := newTestStore(t)
	actividad := crearActividadDePrueba(t, s, "Lectura")

	require.NoError(t, s.EliminarActividad(actividad.ID))
	assert.ErrorIs(t, s.EliminarActividad(actividad.ID), ErrNoEncontrado)
}

func TestBuscarActividades(t *testing.T) {
	s := newTestStore(t)
	crearActividadDePrueba(t, s, "Respiración profunda")
	crearActividadDePrueba(t, s, "Respiración cuadrada")
	crearActividadDePrueba(t, s, "Caminata")

	resultados, err := s.BuscarActividades("Respiración")
	require.NoError(t, err)
	assert.Len(t, resultados, 2)

	vacios, err := s.BuscarActividades("natación")
	require.NoError(t, err)
	assert.Empty(t, vacios)
	assert.NotNil(t, vacios)
}

func TestListarActividadesConConteos(t *testing.T) {
	s := newTestStore(t)
	conEjercicios := crearActividadDePrueba(t, s, "Meditación guiada")
	sinNada := crearActividadDePrueba(t, s, "Diario")

	for i := 0; i < 3; i++ {
		_, err := s.CrearEjercicio(models.CrearEjercicioRequest{IDActividad: conEjercicios.ID})
		require.NoError(t, err)
	}
	meditacion, err := s.CrearMeditacion(models.CrearMeditacionRequest{IDActividad: conEjercicios.ID, Tiempo: 12})
	require.NoError(t, err)

	resumen, err := s.ListarActividades()
	require.NoError(t, err)
	require.Len(t, resumen, 2)

	porID := map[uint]models.ActividadResumen{}
	for _, a := range resumen {
		porID[a.ID] = a
	}
	assert.EqualValues(t, 3, porID[conEjercicios.ID].TotalEjercicios)
	require.NotNil(t, porID[conEjercicios.ID].IDMeditacion)
	assert.Equal(t, meditacion.ID, *porID[conEjercicios.ID].IDMeditacion)
	assert.EqualValues(t, 0, porID[sinNada.ID].TotalEjercicios)
	assert.Nil(t, porID[sinNada.ID].IDMeditacion)
}
