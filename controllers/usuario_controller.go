package controllers

import (
	"errors"
	"net/http"

	"github.com/RodMac08/WellBloomBE/models"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/RodMac08/WellBloomBE/utils"
	"github.com/gin-gonic/gin"
)

// UsuarioController maneja los usuarios finales de la aplicación
type UsuarioController struct {
	store *store.Store
}

func NewUsuarioController(s *store.Store) *UsuarioController {
	return &UsuarioController{store: s}
}

// GetAll lista todos los usuarios
func (uc *UsuarioController) GetAll(c *gin.Context) {
	usuarios, err := uc.store.ListarUsuarios()
	if err != nil {
		responderError(c, err, "Error al obtener usuarios")
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

// GetByID devuelve un usuario por id
func (uc *UsuarioController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	usuario, err := uc.store.ObtenerUsuario(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Usuario no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al obtener usuario")
		return
	}
	c.JSON(http.StatusOK, usuario)
}

// Create registra un usuario nuevo
func (uc *UsuarioController) Create(c *gin.Context) {
	var req models.CrearUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	digest, err := utils.HashContrasena(req.Contrasena)
	if err != nil {
		responderError(c, err, "Error al crear usuario")
		return
	}

	usuario, err := uc.store.CrearUsuario(req, digest)
	if err != nil {
		responderError(c, err, "Error al crear usuario")
		return
	}
	c.JSON(http.StatusCreated, usuario)
}

// UpdateUltimoIngreso marca el último ingreso del usuario
func (uc *UsuarioController) UpdateUltimoIngreso(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := uc.store.ActualizarUltimoIngreso(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Usuario no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al actualizar usuario")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Último ingreso actualizado"})
}

// UpdateSeccion cambia la sección del usuario
func (uc *UsuarioController) UpdateSeccion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.ActualizarSeccionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	err := uc.store.ActualizarSeccion(id, req.Seccion)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Usuario no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al actualizar usuario")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sección actualizada"})
}
