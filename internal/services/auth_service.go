package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"wellspring/internal/models/db_models"
	"wellspring/internal/models/request_models"
	"wellspring/internal/models/response_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/identity"
	"wellspring/pkg/logger"
	mem "wellspring/pkg/memcache"
	"wellspring/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AuthServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	Register(ctx context.Context, info *identity.TokenInfo, request request_models.RegisterRequest) (*response_models.ProfileResponse, error)
	Me(ctx context.Context, uid uuid.UUID) (*response_models.ProfileResponse, error)
	UpdatePreferences(ctx context.Context, uid uuid.UUID, request request_models.UpdatePreferencesRequest) (*response_models.ProfileResponse, error)
	DeleteAccount(ctx context.Context, uid uuid.UUID, password string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AuthService struct {
	provider    identity.Provider
	profileRepo repositories.ProfileRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
	log         *logger.Logger
}

func NewAuthService(
	provider identity.Provider,
	profileRepo repositories.ProfileRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
	log *logger.Logger,
) AuthServiceInterface {
	return &AuthService{
		provider:    provider,
		profileRepo: profileRepo,
		mailService: mailService,
		resetTokens: resetTokens,
		log:         log,
	}
}

func (a *AuthService) SignUp(ctx context.Context, request request_models.SignUpRequest) error {
	_, err := a.provider.CreateUser(ctx, request.Email, request.Password, request.DisplayName)
	return err
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.provider.VerifyPassword(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	token, err := a.provider.IssueToken(ctx, user.UID)
	if err != nil {
		return nil, err
	}

	resp := &response_models.LoginResponse{Token: token}

	// A missing profile here is fine: the identity exists but register
	// never completed. The client repairs it with a register call.
	profile, err := a.profileRepo.FindByUserID(ctx, user.UID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile != nil {
		p := response_models.ToProfileResponse(profile)
		resp.Profile = &p
	}

	return resp, nil
}

// Register is idempotent: when a profile already exists for the uid it is
// returned as-is rather than treated as a conflict.
func (a *AuthService) Register(ctx context.Context, info *identity.TokenInfo, request request_models.RegisterRequest) (*response_models.ProfileResponse, error) {
	existing, err := a.profileRepo.FindByUserID(ctx, info.UID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		resp := response_models.ToProfileResponse(existing)
		return &resp, nil
	}

	displayName := request.DisplayName
	if displayName == "" {
		displayName = info.Name
	}
	language := request.PreferredLanguage
	if language == "" {
		language = "en"
	}
	level := db_models.ExperienceBeginner
	if request.ExperienceLevel != "" {
		level = db_models.ExperienceLevel(request.ExperienceLevel)
	}

	profile := &db_models.Profile{
		UserID:            info.UID,
		Email:             info.Email,
		DisplayName:       displayName,
		Bio:               request.Bio,
		AvatarURL:         request.AvatarURL,
		PreferredLanguage: language,
		WellnessGoals:     request.WellnessGoals,
		ExperienceLevel:   level,
	}
	profile.Notifications = datatypes.NewJSONType(db_models.DefaultNotificationPrefs())

	if err := a.profileRepo.Insert(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.log.Info("profile registered", "uid", info.UID.String())

	resp := response_models.ToProfileResponse(profile)
	return &resp, nil
}

func (a *AuthService) Me(ctx context.Context, uid uuid.UUID) (*response_models.ProfileResponse, error) {
	profile, err := a.profileRepo.FindByUserID(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	resp := response_models.ToProfileResponse(profile)
	return &resp, nil
}

func (a *AuthService) UpdatePreferences(ctx context.Context, uid uuid.UUID, request request_models.UpdatePreferencesRequest) (*response_models.ProfileResponse, error) {
	profile, err := a.profileRepo.FindByUserID(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	if request.DisplayName != nil {
		profile.DisplayName = *request.DisplayName
	}
	if request.AvatarURL != nil {
		profile.AvatarURL = *request.AvatarURL
	}
	if request.Bio != nil {
		profile.Bio = *request.Bio
	}
	if request.PreferredLanguage != nil {
		profile.PreferredLanguage = *request.PreferredLanguage
	}
	if request.WellnessGoals != nil {
		profile.WellnessGoals = *request.WellnessGoals
	}
	if request.ExperienceLevel != nil {
		profile.ExperienceLevel = db_models.ExperienceLevel(*request.ExperienceLevel)
	}
	if request.Notifications != nil {
		prefs := profile.Notifications.Data()
		patch := request.Notifications
		if patch.DailyReminder != nil {
			prefs.DailyReminder = *patch.DailyReminder
		}
		if patch.WeeklySummary != nil {
			prefs.WeeklySummary = *patch.WeeklySummary
		}
		if patch.MilestoneAlerts != nil {
			prefs.MilestoneAlerts = *patch.MilestoneAlerts
		}
		if patch.MarketingUpdates != nil {
			prefs.MarketingUpdates = *patch.MarketingUpdates
		}
		profile.Notifications = datatypes.NewJSONType(prefs)
	}

	if err := a.profileRepo.Update(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.ToProfileResponse(profile)
	return &resp, nil
}

// DeleteAccount soft deletes the profile after password re-confirmation.
// The identity provider record stays; removing it is an explicit admin
// action, never a side effect.
func (a *AuthService) DeleteAccount(ctx context.Context, uid uuid.UUID, password string) error {
	user, err := a.provider.GetUser(ctx, uid)
	if err != nil {
		return err
	}
	if _, err := a.provider.VerifyPassword(ctx, user.Email, password); err != nil {
		return err
	}

	profile, err := a.profileRepo.FindByUserID(ctx, uid)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if profile == nil {
		return utils.ErrProfileNotFound
	}

	return a.profileRepo.SoftDelete(ctx, profile.ID)
}

// ForgotPassword never reveals whether the email exists.
func (a *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.provider.GetUserByEmail(ctx, email)
	if err != nil {
		// Swallow not-found, surface provider failures.
		if err == utils.ErrUserNotFound {
			return nil
		}
		return err
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrProviderError
	}
	a.resetTokens.Set(token, user.UID.String(), resetTokenTTL)

	if err := a.mailService.SendResetPasswordMail(email, token); err != nil {
		a.log.Error("reset mail failed", "err", err)
	}
	return nil
}

func (a *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	rawUID := a.resetTokens.Consume(token)
	if rawUID == "" {
		return utils.ErrInvalidResetToken
	}
	uid, err := uuid.Parse(rawUID)
	if err != nil {
		return utils.ErrInvalidResetToken
	}

	return a.provider.UpdatePassword(ctx, uid, newPassword)
}
