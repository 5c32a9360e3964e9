package usecases

import (
	"context"
	"fmt"

	"tickethub/internal/application/user/dto"
	"tickethub/internal/domain/user"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
)

type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	role, ok := authorization.ParseUserRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid role: %s", cmd.Role))
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "email", cmd.Email, "error", err)
		return nil, errors.NewInternalError("failed to check email", err.Error())
	}
	if exists {
		return nil, errors.NewValidationError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err.Error())
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		// Concurrent registration can still trip the unique index.
		if errors.IsDuplicateError(err) {
			return nil, errors.NewValidationError("email already registered")
		}
		uc.logger.Errorw("failed to save user", "email", cmd.Email, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "email", u.Email(), "role", u.Role())
	return dto.ToUserDTO(u), nil
}
