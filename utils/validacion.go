package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegistrarNombresJSON hace que los errores de validación reporten el nombre
// JSON del campo en lugar del nombre del struct. Se llama una vez al arrancar.
func RegistrarNombresJSON() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		nombre := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if nombre == "-" || nombre == "" {
			return fld.Name
		}
		return nombre
	})
}

// ErroresDeValidacion convierte el error de binding en la lista de mensajes
// por campo que devuelve el API; reporta todos los campos violados.
func ErroresDeValidacion(err error) []models.ErrorCampo {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.ErrorCampo{{Campo: "body", Mensaje: "Cuerpo de la petición inválido"}}
	}

	errores := make([]models.ErrorCampo, 0, len(verrs))
	for _, fe := range verrs {
		errores = append(errores, models.ErrorCampo{Campo: fe.Field(), Mensaje: mensajePara(fe)})
	}
	return errores
}

func mensajePara(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "El campo es obligatorio"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("Debe ser a lo más %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Mínimo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("Debe ser al menos %s", fe.Param())
	case "email":
		return "Correo electrónico inválido"
	case "oneof":
		return "Valor no válido"
	default:
		return "Valor inválido"
	}
}
