package database

import (
	"fmt"

	"github.com/careerconnect/careerconnect/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations for every model
// this service owns.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Message{},
	); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}
