package controllers

import (
	"errors"
	"net/http"

	"github.com/RodMac08/WellBloomBE/config"
	"github.com/RodMac08/WellBloomBE/models"
	"github.com/RodMac08/WellBloomBE/store"
	"github.com/RodMac08/WellBloomBE/utils"
	"github.com/gin-gonic/gin"
)

// AdministradorController maneja el registro, acceso y gestión de administradores
type AdministradorController struct {
	store *store.Store
}

func NewAdministradorController(s *store.Store) *AdministradorController {
	return &AdministradorController{store: s}
}

// Register registra un nuevo administrador
func (ac *AdministradorController) Register(c *gin.Context) {
	var req models.RegistrarAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	digest, err := utils.HashContrasena(req.Contrasena)
	if err != nil {
		responderError(c, err, "Error al registrar administrador")
		return
	}

	admin, err := ac.store.RegistrarAdministrador(req, digest)
	if err != nil {
		responderError(c, err, "Error al registrar administrador")
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// Login verifica credenciales y emite un token
func (ac *AdministradorController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	admin, err := ac.store.AdministradorPorCorreo(req.Correo)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales inválidas"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al iniciar sesión")
		return
	}

	if !utils.VerificarContrasena(req.Contrasena, admin.Contrasena) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales inválidas"})
		return
	}

	token, err := utils.GenerarToken(admin.ID, admin.Rol)
	if err != nil {
		responderError(c, err, "Error al iniciar sesión")
		return
	}

	if err := ac.store.RegistrarAcceso(admin.ID); err != nil && config.Logger != nil {
		config.Logger.Warnw("no se pudo registrar el último acceso", "admin_id", admin.ID, "error", err)
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		ID:     admin.ID,
		Nombre: admin.Nombre,
		Correo: admin.Correo,
		Rol:    admin.Rol,
		Token:  token,
	})
}

// GetAll lista los administradores; solo superadmin
func (ac *AdministradorController) GetAll(c *gin.Context) {
	if !utils.RolPermitido(c.GetString("admin_rol"), models.RolSuperadmin) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Permisos insuficientes"})
		return
	}

	admins, err := ac.store.ListarAdministradores()
	if err != nil {
		responderError(c, err, "Error al obtener administradores")
		return
	}
	c.JSON(http.StatusOK, admins)
}

// GetByID devuelve un administrador; solo superadmin
func (ac *AdministradorController) GetByID(c *gin.Context) {
	if !utils.RolPermitido(c.GetString("admin_rol"), models.RolSuperadmin) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Permisos insuficientes"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	admin, err := ac.store.ObtenerAdministrador(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Administrador no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al obtener administrador")
		return
	}
	c.JSON(http.StatusOK, admin)
}

// Update aplica un parche a un administrador; cualquier rol autenticado
func (ac *AdministradorController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.ActualizarAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderBinding(c, err)
		return
	}

	var digest string
	if req.Contrasena != nil {
		var err error
		digest, err = utils.HashContrasena(*req.Contrasena)
		if err != nil {
			responderError(c, err, "Error al actualizar administrador")
			return
		}
	}

	admin, err := ac.store.ActualizarAdministrador(id, req, digest)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Administrador no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al actualizar administrador")
		return
	}
	c.JSON(http.StatusOK, admin)
}

// Delete elimina un administrador; solo superadmin
func (ac *AdministradorController) Delete(c *gin.Context) {
	if !utils.RolPermitido(c.GetString("admin_rol"), models.RolSuperadmin) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Permisos insuficientes"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := ac.store.EliminarAdministrador(id)
	if errors.Is(err, store.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Administrador no encontrado"})
		return
	}
	if err != nil {
		responderError(c, err, "Error al eliminar administrador")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Administrador eliminado correctamente"})
}
