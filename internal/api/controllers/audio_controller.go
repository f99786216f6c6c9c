package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellspring/internal/models/request_models"
	"wellspring/internal/services"
	"wellspring/pkg/middleware"
	"wellspring/pkg/utils"
)

type AudioController struct {
	audioService services.AudioServiceInterface
}

func NewAudioController(audioService services.AudioServiceInterface) *AudioController {
	return &AudioController{
		audioService: audioService,
	}
}

// ListCelebrations godoc
// @Summary Celebration sound catalog
// @Tags Audio
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /audio/celebrations [get]
func (a *AudioController) ListCelebrations(c *gin.Context) {
	a.listTracks(c, "celebrations")
}

// ListMeditation godoc
// @Summary Meditation audio catalog
// @Tags Audio
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /audio/meditation [get]
func (a *AudioController) ListMeditation(c *gin.Context) {
	a.listTracks(c, "meditation")
}

// ListAmbient godoc
// @Summary Ambient audio catalog
// @Tags Audio
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /audio/ambient [get]
func (a *AudioController) ListAmbient(c *gin.Context) {
	a.listTracks(c, "ambient")
}

func (a *AudioController) listTracks(c *gin.Context, kind string) {
	tracks, err := a.audioService.ListTracks(c.Request.Context(), kind)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tracks, "Tracks fetched successfully")
}

// Categories godoc
// @Summary Distinct audio categories
// @Tags Audio
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /audio/categories [get]
func (a *AudioController) Categories(c *gin.Context) {
	categories, err := a.audioService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

// Feedback godoc
// @Summary Log a playback event
// @Tags Audio
// @Accept json
// @Produce json
// @Param request body request_models.AudioFeedbackRequest true "Feedback payload"
// @Success 201 {object} utils.APIResponse
// @Router /audio/feedback [post]
func (a *AudioController) Feedback(c *gin.Context) {
	var req request_models.AudioFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := a.audioService.LogFeedback(c.Request.Context(), profileID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Feedback logged successfully")
}
