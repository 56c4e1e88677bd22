package models

// Frase modelo de la tabla Frases: frase motivacional asociada a una emoción
type Frase struct {
	ID        uint    `gorm:"column:id_frase;primaryKey" json:"id_frase"`
	Frase     string  `gorm:"column:frase;type:varchar(255)" json:"frase"`
	Autor     *string `gorm:"column:autor;type:varchar(255)" json:"autor"`
	IDEmocion uint    `gorm:"column:id_emocion;index" json:"id_emocion"`
}

func (Frase) TableName() string { return "Frases" }
