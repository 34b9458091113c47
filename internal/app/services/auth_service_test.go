package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
	"github.com/eduverse/eduverse/internal/pkg/auth"
)

type fakeEmailSender struct {
	sentTo    string
	sentToken string
}

func (f *fakeEmailSender) SendPasswordResetEmail(toEmail, toName, token string) error {
	f.sentTo = toEmail
	f.sentToken = token
	return nil
}

func newAuthServiceForTest(users *fakeUserRepo, sender *fakeEmailSender) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return NewAuthService(users, jwtService, sender, zerolog.Nop())
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users, &fakeEmailSender{})

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "Jane@University.EDU",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleStudent, resp.User.Role)
	assert.Equal(t, "jane@university.edu", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
	assert.NotEqual(t, "s3cret-pass", resp.User.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users, &fakeEmailSender{})
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "A", Email: "a@b.edu", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "B", Email: "a@b.edu", Password: "password2"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginRoundTrip(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users, &fakeEmailSender{})
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Jane", Email: "jane@b.edu", Password: "s3cret-pass", Role: "instructor"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@b.edu", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleInstructor, resp.User.Role)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginHidesAccountExistence(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users, &fakeEmailSender{})
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Jane", Email: "jane@b.edu", Password: "s3cret-pass"})
	require.NoError(t, err)

	// Wrong password and unknown email yield the same error.
	_, wrongPass := svc.Login(ctx, &dto.LoginRequest{Email: "jane@b.edu", Password: "nope-nope"})
	_, unknown := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@b.edu", Password: "whatever1"})

	assert.ErrorIs(t, wrongPass, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, apperrors.ErrInvalidCredentials)
}

func TestForgotPasswordSilentForUnknownEmail(t *testing.T) {
	sender := &fakeEmailSender{}
	svc := newAuthServiceForTest(newFakeUserRepo(), sender)

	require.NoError(t, svc.ForgotPassword(context.Background(), "ghost@b.edu"))
	assert.Empty(t, sender.sentTo)
}

func TestPasswordResetFlow(t *testing.T) {
	users := newFakeUserRepo()
	sender := &fakeEmailSender{}
	svc := newAuthServiceForTest(users, sender)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Jane", Email: "jane@b.edu", Password: "old-password"})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, "jane@b.edu"))
	require.NotEmpty(t, sender.sentToken)
	assert.Equal(t, "jane@b.edu", sender.sentTo)

	require.NoError(t, svc.ResetPassword(ctx, sender.sentToken, "new-password"))

	// New password works, old one does not.
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "jane@b.edu", Password: "new-password"})
	require.NoError(t, err)
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "jane@b.edu", Password: "old-password"})
	assert.Error(t, err)

	// Token is single use.
	err = svc.ResetPassword(ctx, sender.sentToken, "another-one")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPasswordResetToken)
}
