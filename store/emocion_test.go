package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearEmocionDuplicadaNoInserta(t *testing.T) {
	s := newTestStore(t)
	crearEmocionDePrueba(t, s, "Felicidad")

	_, err := s.CrearEmocion(models.CrearEmocionRequest{Nombre: "Felicidad"})
	var conflicto *ErrorConflicto
	require.ErrorAs(t, err, &conflicto)
	assert.Equal(t, "Esta emoción ya existe", conflicto.Mensaje)

	// El intento rechazado no deja filas nuevas
	var total int64
	require.NoError(t, s.db.Model(&models.Emocion{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestObtenerEmocionInexistente(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ObtenerEmocion(999)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestActualizarEmocionConservaUnicidad(t *testing.T) {
	s := newTestStore(t)
	crearEmocionDePrueba(t, s, "Felicidad")
	tristeza := crearEmocionDePrueba(t, s, "Tristeza")

	// Renombrar hacia un nombre ocupado se rechaza
	_, err := s.ActualizarEmocion(tristeza.ID, models.CrearEmocionRequest{Nombre: "Felicidad"})
	var conflicto *ErrorConflicto
	require.ErrorAs(t, err, &conflicto)

	// Conservar el propio nombre no cuenta como duplicado
	puntaje := 2
	actualizada, err := s.ActualizarEmocion(tristeza.ID, models.CrearEmocionRequest{
		Nombre:      "Tristeza",
		Descripcion: "nueva descripción",
		Puntaje:     &puntaje,
	})
	require.NoError(t, err)
	assert.Equal(t, "nueva descripción", actualizada.Descripcion)
	require.NotNil(t, actualizada.Puntaje)
	assert.Equal(t, 2, *actualizada.Puntaje)
}

func TestEliminarEmocionConRegistros(t *testing.T) {
	s := newTestStore(t)
	usuario := crearUsuarioDePrueba(t, s, "ana@wellbloom.mx")
	emocion := crearEmocionDePrueba(t, s, "Calma")

	_, err := s.CrearRegistro(models.CrearRegistroRequest{IDUsuario: usuario.ID, IDEmocion: emocion.ID})
	require.NoError(t, err)

	err = s.EliminarEmocion(emocion.ID)
	var dependencia *ErrorDependencia
	require.ErrorAs(t, err, &dependencia)
	assert.Equal(t, "No se puede eliminar: existen registros asociados", dependencia.Mensaje)

	// La emoción sigue ahí
	_, err = s.ObtenerEmocion(emocion.ID)
	assert.NoError(t, err)
}

func TestEliminarEmocionLibre(t *testing.T) {
	s := newTestStore(t)
	emocion := crearEmocionDePrueba(t, s, "Enojo")

	require.NoError(t, s.EliminarEmocion(emocion.ID))

	_, err := s.ObtenerEmocion(emocion.ID)
	assert.ErrorIs(t, err, ErrNoEncontrado)

	// Repetir el borrado ya no encuentra la fila
	assert.ErrorIs(t, s.EliminarEmocion(emocion.ID), ErrNoEncontrado)
}

func TestListarEmocionesPaginadas(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 15; i++ {
		crearEmocionDePrueba(t, s, fmt.Sprintf("Emoción %02d", i))
	}

	primera, total, err := s.ListarEmociones(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	assert.Len(t, primera, 10)

	segunda, total, err := s.ListarEmociones(2, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	assert.Len(t, segunda, 5)

	// Las páginas no comparten elementos
	vistas := map[uint]bool{}
	for _, e := range primera {
		vistas[e.ID] = true
	}
	for _, e := range segunda {
		assert.False(t, vistas[e.ID], "la emoción %d aparece en ambas páginas", e.ID)
	}

	// Parámetros fuera de rango caen a los valores por defecto
	porDefecto, _, err := s.ListarEmociones(0, -1)
	require.NoError(t, err)
	assert.Len(t, porDefecto, 10)
}

func TestFrasesDeEmocionVacia(t *testing.T) {
	s := newTestStore(t)
	emocion := crearEmocionDePrueba(t, s, "Serenidad")

	frases, err := s.FrasesDeEmocion(emocion.ID)
	require.NoError(t, err)
	assert.Empty(t, frases)
	assert.NotNil(t, frases)
}

func TestErroresEnvueltosSatisfacenNoEncontrado(t *testing.T) {
	assert.True(t, errors.Is(ErrUsuarioNoEncontrado, ErrNoEncontrado))
	assert.True(t, errors.Is(ErrEmocionNoEncontrada, ErrNoEncontrado))
	assert.True(t, errors.Is(ErrRegistroNoEncontrado, ErrNoEncontrado))
}
