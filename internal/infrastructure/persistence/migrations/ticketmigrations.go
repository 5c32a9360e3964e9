package migrations

import (
	"gorm.io/gorm"

	"tickethub/internal/infrastructure/persistence/models"
)

func MigrateTicketTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TicketModel{},
		&models.CommentModel{},
		&models.StatusLogModel{},
	)
}
