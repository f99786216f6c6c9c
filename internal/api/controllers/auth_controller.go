package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellspring/internal/models/request_models"
	"wellspring/internal/services"
	"wellspring/pkg/identity"
	"wellspring/pkg/middleware"
	"wellspring/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// SignUp godoc
// @Summary Create a new account
// @Description Create login credentials for a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Signup payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/signup [post]
func (a *AuthController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.SignUp(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Login
// @Description Authenticate and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Logged in successfully")
}

// Register godoc
// @Summary Register a wellness profile
// @Description Create (or repair) the caller's profile. Idempotent.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	info, err := tokenInfoFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := a.authService.Register(c.Request.Context(), info, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile registered successfully")
}

// Me godoc
// @Summary Current profile
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	uid, err := middleware.UIDFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := a.authService.Me(c.Request.Context(), uid)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdatePreferences godoc
// @Summary Update profile preferences
// @Description Partial update; absent fields are untouched
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePreferencesRequest true "Preference patch"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/preferences [put]
func (a *AuthController) UpdatePreferences(c *gin.Context) {
	var req request_models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	uid, err := middleware.UIDFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := a.authService.UpdatePreferences(c.Request.Context(), uid, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Preferences updated successfully")
}

// DeleteAccount godoc
// @Summary Delete the caller's account
// @Description Requires password re-confirmation; profile is soft deleted
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.DeleteAccountRequest true "Confirmation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/account [delete]
func (a *AuthController) DeleteAccount(c *gin.Context) {
	var req request_models.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	uid, err := middleware.UIDFromContext(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := a.authService.DeleteAccount(c.Request.Context(), uid, req.Password); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account deleted successfully")
}

// ForgotPassword godoc
// @Summary Request a password reset mail
// @Description Always succeeds; does not disclose whether the email exists
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RequestForgotPassword true "Email payload"
// @Success 200 {object} utils.APIResponse
// @Router /auth/forgot-password [post]
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req request_models.RequestForgotPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "If the email exists, a reset link has been sent")
}

// ResetPassword godoc
// @Summary Reset password with a mailed token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.ResetPasswordRequest true "Reset payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/reset-password [post]
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password reset successfully")
}

func tokenInfoFromContext(c *gin.Context) (*identity.TokenInfo, error) {
	uid, err := middleware.UIDFromContext(c)
	if err != nil {
		return nil, err
	}
	return &identity.TokenInfo{
		UID:           uid,
		Email:         c.GetString("email"),
		EmailVerified: c.GetBool("email_verified"),
		Name:          c.GetString("name"),
		Picture:       c.GetString("picture"),
	}, nil
}
