package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"tickethub/internal/infrastructure/persistence/models"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/biztime"
)

// SeedDefaultManager creates the bootstrap MANAGER account when no
// account with its email exists yet. The password must be rotated
// after first login.
func SeedDefaultManager(db *gorm.DB, passwordHash string) error {
	const email = "admin@company.com"

	var count int64
	if err := db.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check default manager: %w", err)
	}
	if count > 0 {
		return nil
	}

	manager := models.UserModel{
		Name:         "Admin Manager",
		Email:        email,
		PasswordHash: passwordHash,
		Role:         string(authorization.RoleManager),
		CreatedAt:    biztime.NowUTC().UnixMilli(),
	}
	if err := db.Create(&manager).Error; err != nil {
		return fmt.Errorf("failed to seed default manager: %w", err)
	}
	return nil
}
