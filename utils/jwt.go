package utils

import (
	"fmt"
	"time"

	"github.com/RodMac08/WellBloomBE/config"
	"github.com/golang-jwt/jwt/v4"
)

var jwtKey []byte

// tokenVigencia ventana de validez del token de administrador
const tokenVigencia = 8 * time.Hour

// Claims identidad y rol de un administrador autenticado
type Claims struct {
	ID  uint   `json:"id"`
	Rol string `json:"rol"`
	jwt.RegisteredClaims
}

// GenerarToken emite un JWT firmado con la identidad y el rol
func GenerarToken(id uint, rol string) (string, error) {
	claims := &Claims{
		ID:  id,
		Rol: rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenVigencia)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken valida el JWT y devuelve sus claims
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("token inválido")
}

func init() {
	conf, err := config.LoadConfig(".")
	if err != nil {
		panic("no se pudo cargar la configuración: " + err.Error())
	}
	jwtKey = []byte(conf.JWTSecret)
}
