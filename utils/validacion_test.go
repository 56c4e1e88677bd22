package utils

import (
	"errors"
	"testing"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErroresDeValidacionReportanNombresJSON(t *testing.T) {
	RegistrarNombresJSON()

	puntaje := 42
	err := binding.Validator.ValidateStruct(models.CrearEmocionRequest{Puntaje: &puntaje})
	require.Error(t, err)

	errores := ErroresDeValidacion(err)
	require.Len(t, errores, 2)

	porCampo := map[string]string{}
	for _, e := range errores {
		porCampo[e.Campo] = e.Mensaje
	}
	assert.Equal(t, "El campo es obligatorio", porCampo["nombre_emocion"])
	// Puntaje es numérico: el mensaje habla de valor, no de caracteres
	assert.Equal(t, "Debe ser a lo más 10", porCampo["puntaje_emocion"])
}

func TestErroresDeValidacionConErrorGenerico(t *testing.T) {
	errores := ErroresDeValidacion(errors.New("json malformado"))
	require.Len(t, errores, 1)
	assert.Equal(t, "body", errores[0].Campo)
	assert.Equal(t, "Cuerpo de la petición inválido", errores[0].Mensaje)
}
