package mappers

import (
	"fmt"
	"time"

	"tickethub/internal/domain/user"
	"tickethub/internal/infrastructure/persistence/models"
	"tickethub/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		CreatedAt:    u.CreatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, ok := authorization.ParseUserRole(model.Role)
	if !ok {
		return nil, fmt.Errorf("failed to map user role (id=%d): unknown role %q", model.ID, model.Role)
	}

	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		role,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
