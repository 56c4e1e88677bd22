package models

// Emocion modelo de la tabla Emocion
type Emocion struct {
	ID          uint   `gorm:"column:id_emocion;primaryKey" json:"id_emocion"`
	Nombre      string `gorm:"column:nombre_emocion;type:varchar(100);uniqueIndex" json:"nombre_emocion"`
	Descripcion string `gorm:"column:descripcion;type:text" json:"descripcion"`
	Puntaje     *int   `gorm:"column:puntaje_emocion" json:"puntaje_emocion"` // 1-10
}

func (Emocion) TableName() string { return "Emocion" }
