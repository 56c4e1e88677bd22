package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmocionRouter(t *testing.T) *gin.Engine {
	t.Helper()
	s := newTestStore(t)
	ec := NewEmocionController(s)

	r := gin.New()
	grupo := r.Group("/api/emociones")
	grupo.GET("/", ec.GetAll)
	grupo.GET("/:id", ec.GetByID)
	grupo.GET("/:id/frases", ec.GetFrases)
	grupo.POST("/", ec.Create)
	grupo.PUT("/:id", ec.Update)
	grupo.DELETE("/:id", ec.Delete)
	return r
}

func TestCrearEmocionHTTP(t *testing.T) {
	r := newEmocionRouter(t)

	cuerpo := map[string]interface{}{
		"nombre_emocion":  "Felicidad",
		"descripcion":     "estado de ánimo positivo",
		"puntaje_emocion": 9,
	}
	w := ejecutar(t, r, http.MethodPost, "/api/emociones/", cuerpo, "")
	require.Equal(t, http.StatusCreated, w.Code)

	creada := decodificar(t, w)
	assert.Equal(t, "Felicidad", creada["nombre_emocion"])
	assert.EqualValues(t, 9, creada["puntaje_emocion"])

	// El duplicado responde 409
	w = ejecutar(t, r, http.MethodPost, "/api/emociones/", cuerpo, "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Esta emoción ya existe", decodificar(t, w)["message"])
}

func TestCrearEmocionInvalidaHTTP(t *testing.T) {
	r := newEmocionRouter(t)

	// Nombre ausente y puntaje fuera de rango
	w := ejecutar(t, r, http.MethodPost, "/api/emociones/", map[string]interface{}{
		"puntaje_emocion": 42,
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	respuesta := decodificar(t, w)
	errores, ok := respuesta["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, errores, 2)
}

func TestObtenerEmocionHTTP(t *testing.T) {
	r := newEmocionRouter(t)

	w := ejecutar(t, r, http.MethodGet, "/api/emociones/999", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Emoción no encontrada", decodificar(t, w)["message"])

	w = ejecutar(t, r, http.MethodGet, "/api/emociones/abc", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ID inválido", decodificar(t, w)["message"])
}

func TestListarEmocionesHTTP(t *testing.T) {
	r := newEmocionRouter(t)

	for _, nombre := range []string{"Alegría", "Calma", "Enojo"} {
		w := ejecutar(t, r, http.MethodPost, "/api/emociones/", map[string]interface{}{
			"nombre_emocion": nombre,
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := ejecutar(t, r, http.MethodGet, "/api/emociones/?page=1&limit=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	respuesta := decodificar(t, w)
	data, ok := respuesta["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)

	paginacion, ok := respuesta["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, paginacion["total"])
	assert.EqualValues(t, 2, paginacion["totalPages"])
}

func TestFrasesDeEmocionVaciaHTTP(t *testing.T) {
	r := newEmocionRouter(t)

	w := ejecutar(t, r, http.MethodPost, "/api/emociones/", map[string]interface{}{
		"nombre_emocion": "Serenidad",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = ejecutar(t, r, http.MethodGet, "/api/emociones/1/frases", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	// Una emoción inexistente también responde lista vacía, no 404
	w = ejecutar(t, r, http.MethodGet, "/api/emociones/999/frases", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
