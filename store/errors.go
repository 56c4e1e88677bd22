package store

import (
	"errors"
	"fmt"

	"github.com/RodMac08/WellBloomBE/models"
)

// Errores de negocio que los controladores traducen a códigos HTTP.
var (
	ErrNoEncontrado = errors.New("no encontrado")

	// Variantes para los pre-chequeos de llaves foráneas que responden con
	// un mensaje propio; todas satisfacen errors.Is(err, ErrNoEncontrado).
	ErrUsuarioNoEncontrado  = fmt.Errorf("usuario %w", ErrNoEncontrado)
	ErrEmocionNoEncontrada  = fmt.Errorf("emoción %w", ErrNoEncontrado)
	ErrRegistroNoEncontrado = fmt.Errorf("registro emocional %w", ErrNoEncontrado)

	// ErrPropiedad el registro emocional referenciado pertenece a otro usuario
	ErrPropiedad = errors.New("el registro emocional no pertenece a este usuario")
)

// ErrorConflicto violación de una restricción de unicidad
type ErrorConflicto struct {
	Mensaje string
}

func (e *ErrorConflicto) Error() string { return e.Mensaje }

// ErrorDependencia eliminación bloqueada por entidades dependientes; el
// mensaje nombra qué la bloquea.
type ErrorDependencia struct {
	Mensaje string
}

func (e *ErrorDependencia) Error() string { return e.Mensaje }

// ErrorValidacion entrada inválida detectada antes de mutar; acumula todos
// los campos violados, no solo el primero.
type ErrorValidacion struct {
	Errores []models.ErrorCampo
}

func (e *ErrorValidacion) Error() string {
	if len(e.Errores) == 0 {
		return "entrada inválida"
	}
	return e.Errores[0].Campo + ": " + e.Errores[0].Mensaje
}

// errorDeCampo construye un ErrorValidacion de un solo campo
func errorDeCampo(campo, mensaje string) *ErrorValidacion {
	return &ErrorValidacion{Errores: []models.ErrorCampo{{Campo: campo, Mensaje: mensaje}}}
}
