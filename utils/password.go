package utils

import "golang.org/x/crypto/bcrypt"

// HashContrasena genera el digest bcrypt de una contraseña en claro
func HashContrasena(contrasena string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerificarContrasena compara una contraseña en claro con el digest almacenado
func VerificarContrasena(contrasena, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(contrasena)) == nil
}
