package models

// Meditacion modelo de la tabla Meditacion. Una actividad tiene a lo más una
// meditación; la restricción se verifica en el store, no en el esquema.
type Meditacion struct {
	ID          uint `gorm:"column:id_meditacion;primaryKey" json:"id_meditacion"`
	IDActividad uint `gorm:"column:id_actividad;index" json:"id_actividad"`
	Tiempo      int  `gorm:"column:tiempo_meditacion" json:"tiempo_meditacion"` // minutos
	Completado  bool `gorm:"column:completado;default:false" json:"completado"`
}

func (Meditacion) TableName() string { return "Meditacion" }
