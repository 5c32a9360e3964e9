package usecases

import (
	"context"

	userdto "tickethub/internal/application/user/dto"
	"tickethub/internal/domain/user"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
)

// PasswordVerifier checks a plaintext candidate against a stored hash.
type PasswordVerifier interface {
	Verify(hash, password string) bool
}

// TokenIssuer signs an access token for an authenticated account.
type TokenIssuer interface {
	GenerateToken(userID uint, role string) (string, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string           `json:"token"`
	User  *userdto.UserDTO `json:"user"`
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	verifier PasswordVerifier
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same answer for unknown email and wrong password.
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to look up user", "email", cmd.Email, "error", err)
		return nil, err
	}

	if !uc.verifier.Verify(u.PasswordHash(), cmd.Password) {
		uc.logger.Warnw("login rejected", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.issuer.GenerateToken(u.ID(), string(u.Role()))
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token", err.Error())
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())
	return &LoginResult{Token: token, User: userdto.ToUserDTO(u)}, nil
}
