package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tickethub/internal/domain/ticket"
	vo "tickethub/internal/domain/ticket/valueobjects"
	"tickethub/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.UserModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.StatusLogModel{},
	)
	require.NoError(t, err)

	return database
}

func createTestTicket(t *testing.T, title string, priority vo.Priority, creatorID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "A description long enough to pass validation.", priority, creatorID)
	require.NoError(t, err)
	return tk
}
