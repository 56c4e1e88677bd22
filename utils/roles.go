package utils

// RolPermitido indica si el rol está dentro de los roles permitidos. Cada
// handler protegido lo llama explícitamente en su entrada.
func RolPermitido(rol string, permitidos ...string) bool {
	for _, p := range permitidos {
		if rol == p {
			return true
		}
	}
	return false
}
