package postgres

import (
	"fmt"

	"postal-pickup-api/internal/infrastructure/database/postgres/models"
	"postal-pickup-api/internal/logger"
)

// Migrate creates or updates the schema. Users go first so the pickup
// request foreign keys resolve.
func (d *DB) Migrate() error {
	if err := d.DB.AutoMigrate(
		&models.UserModel{},
		&models.PickupRequestModel{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations applied")
	return nil
}
