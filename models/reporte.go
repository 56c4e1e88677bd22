package models

import "time"

// Reporte modelo de la tabla Reporte: pregunta/respuesta interna levantada
// por un administrador
type Reporte struct {
	ID                 uint      `gorm:"column:id_reporte;primaryKey" json:"id_reporte"`
	IDAdministrador    uint      `gorm:"column:id_administrador;index" json:"id_administrador"`
	Pregunta           string    `gorm:"column:pregunta;type:varchar(255)" json:"pregunta"`
	Respuesta          *string   `gorm:"column:respuesta;type:varchar(1000)" json:"respuesta"`
	Nota               *string   `gorm:"column:nota;type:varchar(1000)" json:"nota"`
	FechaCreacion      time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion time.Time `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`
}

func (Reporte) TableName() string { return "Reporte" }
