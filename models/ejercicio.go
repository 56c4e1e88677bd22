package models

// Turnos válidos para un ejercicio
const (
	TurnoManana = "mañana"
	TurnoTarde  = "tarde"
	TurnoNoche  = "noche"
)

// Ejercicio modelo de la tabla Ejercicio
type Ejercicio struct {
	ID          uint    `gorm:"column:id_ejercicio;primaryKey" json:"id_ejercicio"`
	IDActividad uint    `gorm:"column:id_actividad;index" json:"id_actividad"`
	Turno       *string `gorm:"column:turno;type:varchar(20)" json:"turno"`
	Tiempo      *int    `gorm:"column:tiempo" json:"tiempo"` // minutos
	Completado  bool    `gorm:"column:completado;default:false" json:"completado"`
}

func (Ejercicio) TableName() string { return "Ejercicio" }
