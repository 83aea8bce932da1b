package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/guillenLawn/bodega-backend/models"
)

// ConnectDB opens the Postgres pool and migrates the schema. TranslateError
// lets callers detect unique violations via gorm.ErrDuplicatedKey.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.Producto{},
		&models.Pedido{},
		&models.DetallePedido{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
