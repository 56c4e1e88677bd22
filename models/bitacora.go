package models

// Bitacora modelo de la tabla Bitacora: nota libre asociada a un registro
// emocional. El registro referenciado debe pertenecer al mismo usuario.
type Bitacora struct {
	ID         uint    `gorm:"column:id_bitacora;primaryKey" json:"id_bitacora"`
	IDUsuario  uint    `gorm:"column:id_usuario;index" json:"id_usuario"`
	IDRegistro uint    `gorm:"column:id_registro;index" json:"id_registro"`
	Nota       *string `gorm:"column:nota;type:varchar(1000)" json:"nota"`
}

func (Bitacora) TableName() string { return "Bitacora" }
