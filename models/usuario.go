package models

import "time"

// Usuario modelo de la tabla Usuarios
type Usuario struct {
	ID                 uint       `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	Nombre             string     `gorm:"column:nombre;type:varchar(255)" json:"nombre"`
	Correo             string     `gorm:"column:correo;type:varchar(255);uniqueIndex" json:"correo"`
	Contrasena         string     `gorm:"column:contrasena;type:varchar(255)" json:"-"`
	Seccion            string     `gorm:"column:seccion;type:varchar(100)" json:"seccion"`
	FechaCreacion      time.Time  `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaUltimoIngreso *time.Time `gorm:"column:fecha_ultimo_ingreso" json:"fecha_ultimo_ingreso"`
}

func (Usuario) TableName() string { return "Usuarios" }
