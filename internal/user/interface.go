package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Register creates an account with a bcrypt password hash and returns a
	// signed token for the new user.
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	// Login verifies the credentials and returns a signed token.
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	// Detail returns the user's profile without credentials.
	Detail(ctx context.Context, id string) (DetailOutput, error)
}
