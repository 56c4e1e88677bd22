package config

import (
	"time"

	"github.com/RodMac08/WellBloomBE/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConectarDB abre la conexión a MySQL con el pool acotado y migra el esquema.
// Devuelve el manejador para inyectarlo; no hay un singleton de proceso.
func ConectarDB(conf Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(conf.GetDBConnString()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Pool de conexiones
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := MigrarDB(db); err != nil {
		return nil, err
	}
	return db, nil
}

// MigrarDB crea o actualiza todas las tablas del esquema
func MigrarDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.Emocion{},
		&models.RegistroEmocion{},
		&models.Bitacora{},
		&models.Actividad{},
		&models.Ejercicio{},
		&models.Meditacion{},
		&models.Frase{},
		&models.Administrador{},
		&models.Reporte{},
	)
}
