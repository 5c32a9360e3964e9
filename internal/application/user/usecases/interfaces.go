package usecases

import (
	"context"

	"tickethub/internal/application/user/dto"
)

// PasswordHasher abstracts the one-way credential hash used when
// provisioning accounts.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]*dto.UserDTO, error)
}
