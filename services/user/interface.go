package user

import (
	"context"
	"errors"

	"luxesalon/models"
)

// ErrUserNotFound: no identity record has been persisted yet.
var ErrUserNotFound = errors.New("user not found")

// ErrNotVerified: a gated identity mutation was attempted without the
// external verification having succeeded.
var ErrNotVerified = errors.New("verification required")

// AuthResponse carries the authenticated identity and its session token.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserService manages the single local identity record. Verification-code
// delivery and checking live in the cache layer; this service only gates on
// their outcome.
type UserService interface {
	Register(ctx context.Context, input models.RegistrationInput) (*AuthResponse, error)
	RequestLoginCode(ctx context.Context, phone string) error
	VerifyLoginCode(ctx context.Context, phone, code string) (*AuthResponse, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
	ChangePhone(ctx context.Context, newPhone string, verified bool) (*models.User, error)
	Logout(ctx context.Context) error
}
