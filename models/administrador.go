package models

import "time"

// Roles válidos para un administrador
const (
	RolSuperadmin = "superadmin"
	RolModerador  = "moderador"
	RolEditor     = "editor"
)

// Administrador modelo de la tabla Administrador
type Administrador struct {
	ID            uint       `gorm:"column:id_administrador;primaryKey" json:"id_administrador"`
	Nombre        string     `gorm:"column:nombre;type:varchar(255)" json:"nombre"`
	Correo        string     `gorm:"column:correo;type:varchar(255);uniqueIndex" json:"correo"`
	Contrasena    string     `gorm:"column:contrasena;type:varchar(255)" json:"-"`
	Rol           string     `gorm:"column:rol;type:varchar(20);default:moderador" json:"rol"`
	FechaCreacion time.Time  `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	UltimoAcceso  *time.Time `gorm:"column:ultimo_acceso" json:"ultimo_acceso"`
}

func (Administrador) TableName() string { return "Administrador" }
