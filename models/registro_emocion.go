package models

import "time"

// RegistroEmocion modelo de la tabla RegistroEmocion: una captura puntual
// de la emoción de un usuario
type RegistroEmocion struct {
	ID        uint      `gorm:"column:id_registro;primaryKey" json:"id_registro"`
	IDUsuario uint      `gorm:"column:id_usuario;index" json:"id_usuario"`
	IDEmocion uint      `gorm:"column:id_emocion;index" json:"id_emocion"`
	HoraFoto  time.Time `gorm:"column:hora_foto;autoCreateTime" json:"hora_foto"`
}

func (RegistroEmocion) TableName() string { return "RegistroEmocion" }
