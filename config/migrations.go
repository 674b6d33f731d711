package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"sgfrotas.com.br/api/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20240612_create_fleet_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&models.User{},
					&models.Vehicle{},
					&models.Driver{},
					&models.Assignment{},
					&models.Maintenance{},
					&models.FuelPurchase{},
					&models.Trip{},
				)
			},
		},
		{
			ID: "20240715_link_users_to_drivers",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(
					"ALTER TABLE users ADD COLUMN IF NOT EXISTS motorista_id uuid UNIQUE REFERENCES motoristas(id)",
				).Error
			},
		},
		{
			ID: "20240902_trip_coordinates",
			Migrate: func(tx *gorm.DB) error {
				cols := []string{"origem_lat", "origem_lng", "destino_lat", "destino_lng"}
				for _, col := range cols {
					if err := tx.Exec(
						"ALTER TABLE viagens ADD COLUMN IF NOT EXISTS " + col + " numeric",
					).Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	})
	return m.Migrate()
}
