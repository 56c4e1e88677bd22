package middleware

import (
	"net/http"
	"strings"

	"github.com/RodMac08/WellBloomBE/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware exige un token Bearer válido y deja la identidad y el rol
// del administrador en el contexto. La verificación de rol la hace cada
// handler protegido con utils.RolPermitido.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		encabezado := c.GetHeader("Authorization")
		if encabezado == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Acceso no autorizado"})
			return
		}

		tokenString := strings.TrimPrefix(encabezado, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token inválido"})
			return
		}

		c.Set("admin_id", claims.ID)
		c.Set("admin_rol", claims.Rol)
		c.Next()
	}
}
