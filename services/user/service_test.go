package user

import (
	"context"
	"testing"

	"luxesalon/database/memory"
	"luxesalon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() models.RegistrationInput {
	return models.RegistrationInput{
		Name:   "Ava Tan",
		Email:  "ava@example.com",
		Phone:  "+60123456789",
		Gender: "Female",
	}
}

func TestRegister(t *testing.T) {
	svc := NewDefaultUserService(memory.NewStore())
	ctx := context.Background()

	resp, err := svc.Register(ctx, validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Ava Tan", resp.User.Name)

	stored, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, stored.ID)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := NewDefaultUserService(memory.NewStore())
	ctx := context.Background()

	in := validInput()
	in.Email = ""
	_, err := svc.Register(ctx, in)
	assert.Error(t, err)

	in = validInput()
	in.Email = "not-an-email"
	_, err = svc.Register(ctx, in)
	assert.Error(t, err)

	in = validInput()
	in.Phone = ""
	_, err = svc.Register(ctx, in)
	assert.Error(t, err)
}

func TestProfileBeforeRegistration(t *testing.T) {
	svc := NewDefaultUserService(memory.NewStore())
	_, err := svc.Profile(context.Background())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfileAppliesNonEmptyFields(t *testing.T) {
	svc := NewDefaultUserService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	u, err := svc.UpdateProfile(ctx, models.ProfileUpdate{Name: "Ava T."})
	require.NoError(t, err)
	assert.Equal(t, "Ava T.", u.Name)
	assert.Equal(t, "ava@example.com", u.Email, "empty fields stay as they were")
	assert.Equal(t, "+60123456789", u.Phone)
}

func TestChangePhoneGatedOnVerification(t *testing.T) {
	svc := NewDefaultUserService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.ChangePhone(ctx, "+60199999999", false)
	assert.ErrorIs(t, err, ErrNotVerified)

	u, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+60123456789", u.Phone, "unverified attempts change nothing")

	u, err = svc.ChangePhone(ctx, "+60199999999", true)
	require.NoError(t, err)
	assert.Equal(t, "+60199999999", u.Phone)
}

func TestLogoutClearsIdentity(t *testing.T) {
	svc := NewDefaultUserService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Profile(ctx)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
