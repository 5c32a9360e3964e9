package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, userID uint) (*User, error)
	// FindByIDs returns the users for the given IDs, keyed by ID.
	// Missing IDs are simply absent from the result.
	FindByIDs(ctx context.Context, userIDs []uint) (map[uint]*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// List returns all users ordered by creation time descending.
	List(ctx context.Context) ([]*User, error)
}
