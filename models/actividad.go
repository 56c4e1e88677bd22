package models

// Actividad modelo de la tabla Actividad
type Actividad struct {
	ID          uint   `gorm:"column:id_actividad;primaryKey" json:"id_actividad"`
	Nombre      string `gorm:"column:nombre_actividad;type:varchar(255)" json:"nombre_actividad"`
	Descripcion string `gorm:"column:descripcion;type:text" json:"descripcion"`
	Tiempo      *int   `gorm:"column:tiempo_actividad" json:"tiempo_actividad"` // minutos
}

func (Actividad) TableName() string { return "Actividad" }
