package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wellspring/internal/models/request_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/identity"
	mem "wellspring/pkg/memcache"
	"wellspring/pkg/utils"
)

type captureMailService struct {
	to    string
	token string
	sent  int
}

func (m *captureMailService) SendResetPasswordMail(to, token string) error {
	m.to = to
	m.token = token
	m.sent++
	return nil
}

type authFixture struct {
	db       *gorm.DB
	svc      AuthServiceInterface
	provider identity.Provider
	mail     *captureMailService
	tokens   mem.ResetTokenStore
	profiles repositories.ProfileRepository
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	db := newTestDB(t)
	provider := identity.NewJWTProvider(repositories.NewIdentityRepository(db), "test-secret", time.Hour)
	profiles := repositories.NewProfileRepository(db)
	mail := &captureMailService{}
	tokens := mem.NewResetTokens()
	t.Cleanup(tokens.Stop)

	return &authFixture{
		db:       db,
		svc:      NewAuthService(provider, profiles, mail, tokens, testLogger()),
		provider: provider,
		mail:     mail,
		tokens:   tokens,
		profiles: profiles,
	}
}

func (f *authFixture) signUpAndLogin(t *testing.T, email string) *identity.TokenInfo {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.svc.SignUp(ctx, request_models.SignUpRequest{
		DisplayName: "Test User",
		Email:       email,
		Password:    "secret123",
	}))

	user, err := f.provider.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	return &identity.TokenInfo{UID: user.UID, Email: user.Email, Name: user.DisplayName}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	req := request_models.SignUpRequest{DisplayName: "Test User", Email: "dup@example.com", Password: "secret123"}

	require.NoError(t, f.svc.SignUp(ctx, req))
	assert.ErrorIs(t, f.svc.SignUp(ctx, req), utils.ErrEmailAlreadyExists)
}

func TestLoginBeforeRegisterOmitsProfile(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.signUpAndLogin(t, "pending@example.com")

	resp, err := f.svc.Login(ctx, request_models.LoginRequest{Email: "pending@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Nil(t, resp.Profile)

	_, err = f.svc.Login(ctx, request_models.LoginRequest{Email: "pending@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestRegisterIsIdempotent(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	info := f.signUpAndLogin(t, "idem@example.com")

	first, err := f.svc.Register(ctx, info, request_models.RegisterRequest{
		DisplayName:   "Calm Carol",
		WellnessGoals: []string{"sleep", "focus"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Calm Carol", first.DisplayName)
	assert.Equal(t, []string{"sleep", "focus"}, first.WellnessGoals)

	// A repeat register returns the existing profile untouched.
	second, err := f.svc.Register(ctx, info, request_models.RegisterRequest{DisplayName: "Someone Else"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Calm Carol", second.DisplayName)
}

func TestRegisterDefaultsFromToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	info := f.signUpAndLogin(t, "defaults@example.com")

	profile, err := f.svc.Register(ctx, info, request_models.RegisterRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Test User", profile.DisplayName)
	assert.Equal(t, "en", profile.PreferredLanguage)
	assert.Equal(t, "beginner", profile.ExperienceLevel)
	assert.True(t, profile.Notifications.DailyReminder)
}

func TestUpdatePreferencesPartialPatch(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	info := f.signUpAndLogin(t, "prefs@example.com")
	_, err := f.svc.Register(ctx, info, request_models.RegisterRequest{Bio: "original bio"})
	require.NoError(t, err)

	lang := "fr"
	off := false
	updated, err := f.svc.UpdatePreferences(ctx, info.UID, request_models.UpdatePreferencesRequest{
		PreferredLanguage: &lang,
		Notifications:     &request_models.NotificationsPatch{DailyReminder: &off},
	})
	require.NoError(t, err)
	assert.Equal(t, "fr", updated.PreferredLanguage)
	assert.Equal(t, "original bio", updated.Bio)
	assert.False(t, updated.Notifications.DailyReminder)
	assert.True(t, updated.Notifications.MilestoneAlerts)

	// Round-trip through storage.
	me, err := f.svc.Me(ctx, info.UID)
	require.NoError(t, err)
	assert.Equal(t, "fr", me.PreferredLanguage)
	assert.False(t, me.Notifications.DailyReminder)
}

func TestDeleteAccountNeedsPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	info := f.signUpAndLogin(t, "leaver@example.com")
	_, err := f.svc.Register(ctx, info, request_models.RegisterRequest{})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteAccount(ctx, info.UID, "wrong-password"), utils.ErrInvalidCredentials)

	require.NoError(t, f.svc.DeleteAccount(ctx, info.UID, "secret123"))

	_, err = f.svc.Me(ctx, info.UID)
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)

	// The login credentials survive; only the profile is gone.
	_, err = f.provider.VerifyPassword(ctx, "leaver@example.com", "secret123")
	assert.NoError(t, err)
}

func TestForgotPasswordFlow(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.signUpAndLogin(t, "forgetful@example.com")

	require.NoError(t, f.svc.ForgotPassword(ctx, "forgetful@example.com"))
	require.Equal(t, 1, f.mail.sent)
	assert.Equal(t, "forgetful@example.com", f.mail.to)
	assert.Len(t, f.mail.token, 64)

	require.NoError(t, f.svc.ResetPassword(ctx, f.mail.token, "newsecret456"))

	_, err := f.svc.Login(ctx, request_models.LoginRequest{Email: "forgetful@example.com", Password: "newsecret456"})
	assert.NoError(t, err)
	_, err = f.svc.Login(ctx, request_models.LoginRequest{Email: "forgetful@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	// Token is single-use.
	assert.ErrorIs(t, f.svc.ResetPassword(ctx, f.mail.token, "another789"), utils.ErrInvalidResetToken)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	f := newAuthFixture(t)

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "nobody@example.com"))
	assert.Equal(t, 0, f.mail.sent)
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	info := f.signUpAndLogin(t, "token@example.com")

	token, err := f.provider.IssueToken(ctx, info.UID)
	require.NoError(t, err)

	verified, err := f.provider.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, info.UID, verified.UID)
	assert.Equal(t, "token@example.com", verified.Email)

	_, err = f.provider.VerifyToken(ctx, token+"tampered")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)

	_, err = f.provider.IssueToken(ctx, uuid.New())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}
