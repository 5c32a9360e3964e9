package migrations

import (
	"gorm.io/gorm"

	"tickethub/internal/infrastructure/persistence/models"
)

func MigrateUserTables(db *gorm.DB) error {
	return db.AutoMigrate(&models.UserModel{})
}
