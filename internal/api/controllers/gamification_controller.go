package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wellspring/internal/models/request_models"
	"wellspring/internal/services"
	"wellspring/pkg/middleware"
	"wellspring/pkg/utils"
)

type GamificationController struct {
	gamificationService services.GamificationServiceInterface
}

func NewGamificationController(gamificationService services.GamificationServiceInterface) *GamificationController {
	return &GamificationController{
		gamificationService: gamificationService,
	}
}

// Badges godoc
// @Summary Earned badges
// @Tags Gamification
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /wellness/gamification/badges [get]
func (g *GamificationController) Badges(c *gin.Context) {
	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	badges, err := g.gamificationService.Badges(c.Request.Context(), profileID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, badges, "Badges fetched successfully")
}

// Level godoc
// @Summary Current level and points
// @Tags Gamification
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /wellness/gamification/level [get]
func (g *GamificationController) Level(c *gin.Context) {
	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	level, err := g.gamificationService.Level(c.Request.Context(), profileID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, level, "Level fetched successfully")
}

// Rewards godoc
// @Summary Badge count and pending celebrations
// @Tags Gamification
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /wellness/gamification/rewards [get]
func (g *GamificationController) Rewards(c *gin.Context) {
	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	rewards, err := g.gamificationService.Rewards(c.Request.Context(), profileID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rewards, "Rewards fetched successfully")
}

// Leaderboard godoc
// @Summary Ranked leaderboard
// @Tags Gamification
// @Produce json
// @Param category query string false "overall, meditation or workout"
// @Param period query string false "7d, 30d, 90d or all"
// @Success 200 {object} utils.APIResponse
// @Router /wellness/gamification/leaderboard [get]
func (g *GamificationController) Leaderboard(c *gin.Context) {
	board, err := g.gamificationService.Leaderboard(c.Request.Context(), c.Query("category"), c.Query("period"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, board, "Leaderboard fetched successfully")
}

// TriggerMilestone godoc
// @Summary Record a milestone celebration
// @Tags Gamification
// @Accept json
// @Produce json
// @Param request body request_models.TriggerMilestoneRequest true "Milestone payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /wellness/gamification/milestone [post]
func (g *GamificationController) TriggerMilestone(c *gin.Context) {
	var req request_models.TriggerMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	celebration, err := g.gamificationService.TriggerMilestone(c.Request.Context(), profileID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, celebration, "Milestone recorded successfully")
}

// MarkCelebrationViewed godoc
// @Summary Mark a celebration as viewed
// @Description Idempotent; repeat calls succeed without effect
// @Tags Gamification
// @Produce json
// @Param id path string true "Celebration id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /wellness/gamification/celebrations/{id}/viewed [post]
func (g *GamificationController) MarkCelebrationViewed(c *gin.Context) {
	celebrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid celebration id")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	celebration, err := g.gamificationService.MarkCelebrationViewed(c.Request.Context(), profileID, celebrationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, celebration, "Celebration marked as viewed")
}
