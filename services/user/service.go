package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"luxesalon/database"
	"luxesalon/models"
	"luxesalon/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenLifetime = 72 * time.Hour

// DefaultUserService persists the identity record as one blob under the
// identity key, mirroring how the reservation collection is stored.
type DefaultUserService struct {
	Store    database.BlobStore
	Validate *validator.Validate
}

func NewDefaultUserService(store database.BlobStore) *DefaultUserService {
	return &DefaultUserService{
		Store:    store,
		Validate: validator.New(),
	}
}

// Register validates the registration fields, creates the identity record
// and signs the caller in.
func (s *DefaultUserService) Register(ctx context.Context, input models.RegistrationInput) (*AuthResponse, error) {
	if err := s.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid registration data: %w", err)
	}

	now := time.Now()
	u := models.User{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Gender:    input.Gender,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.save(ctx, &u); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("user registered", zap.String("userID", u.ID))
	return s.authResponse(u)
}

// RequestLoginCode issues a verification code for the phone number.
func (s *DefaultUserService) RequestLoginCode(ctx context.Context, phone string) error {
	if phone == "" {
		return fmt.Errorf("phone is required")
	}
	return utils.InitiateLoginCode(phone)
}

// VerifyLoginCode checks the code and signs the stored identity in. A code
// for a phone with no stored identity fails with ErrUserNotFound; the caller
// should register instead.
func (s *DefaultUserService) VerifyLoginCode(ctx context.Context, phone, code string) (*AuthResponse, error) {
	if err := utils.VerifyLoginCodeRecord(phone, code); err != nil {
		return nil, err
	}

	u, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if u.Phone != phone {
		return nil, ErrUserNotFound
	}
	return s.authResponse(*u)
}

// Profile returns the stored identity record.
func (s *DefaultUserService) Profile(ctx context.Context) (*models.User, error) {
	return s.load(ctx)
}

// UpdateProfile applies the non-empty fields of the update. Phone is
// excluded here; it only changes through ChangePhone.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	u, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		u.Name = update.Name
	}
	if update.Email != "" {
		u.Email = update.Email
	}
	if update.Gender != "" {
		u.Gender = update.Gender
	}
	u.UpdatedAt = time.Now()

	if err := s.save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ChangePhone swaps the phone number once the external verification has
// confirmed ownership of the new number. The service never computes the
// verification outcome itself.
func (s *DefaultUserService) ChangePhone(ctx context.Context, newPhone string, verified bool) (*models.User, error) {
	if !verified {
		return nil, ErrNotVerified
	}
	if newPhone == "" {
		return nil, fmt.Errorf("phone is required")
	}

	u, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	u.Phone = newPhone
	u.UpdatedAt = time.Now()

	if err := s.save(ctx, u); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("phone number changed", zap.String("userID", u.ID))
	return u, nil
}

// Logout removes the stored identity record.
func (s *DefaultUserService) Logout(ctx context.Context) error {
	if err := s.Store.Delete(ctx, database.KeyUser); err != nil && err != database.ErrKeyNotFound {
		return fmt.Errorf("failed to clear identity record: %w", err)
	}
	return nil
}

func (s *DefaultUserService) load(ctx context.Context) (*models.User, error) {
	blob, err := s.Store.Load(ctx, database.KeyUser)
	if err != nil {
		if err == database.ErrKeyNotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	var u models.User
	if err := json.Unmarshal(blob, &u); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return &u, nil
}

func (s *DefaultUserService) save(ctx context.Context, u *models.User) error {
	blob, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.Store.Save(ctx, database.KeyUser, blob); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	return nil
}

func (s *DefaultUserService) authResponse(u models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{User: u, Token: token}, nil
}
