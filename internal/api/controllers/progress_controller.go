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

type ProgressController struct {
	progressService services.ProgressServiceInterface
}

func NewProgressController(progressService services.ProgressServiceInterface) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

// LogMoodCheckin godoc
// @Summary Log a mood checkin
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body request_models.MoodCheckinRequest true "Checkin payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /wellness/progress/checkins [post]
func (p *ProgressController) LogMoodCheckin(c *gin.Context) {
	var req request_models.MoodCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	checkin, err := p.progressService.LogMoodCheckin(c.Request.Context(), profileID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, checkin, "Mood checkin logged successfully")
}

// MoodHistory godoc
// @Summary Paginated mood history
// @Tags Progress
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} utils.APIResponse
// @Router /wellness/progress/checkins [get]
func (p *ProgressController) MoodHistory(c *gin.Context) {
	page, limit, ok := parsePagination(c, 30)
	if !ok {
		return
	}
	from := parseInt64Query(c, "from")
	to := parseInt64Query(c, "to")

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	history, err := p.progressService.MoodHistory(c.Request.Context(), profileID, page, limit, from, to)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "Mood history fetched successfully")
}

// CreateGoal godoc
// @Summary Create a wellness goal
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body request_models.CreateGoalRequest true "Goal payload"
// @Success 201 {object} utils.APIResponse
// @Router /wellness/progress/goals [post]
func (p *ProgressController) CreateGoal(c *gin.Context) {
	var req request_models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	goal, err := p.progressService.CreateGoal(c.Request.Context(), profileID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, goal, "Goal created successfully")
}

// UpdateGoal godoc
// @Summary Update goal progress or status
// @Tags Progress
// @Accept json
// @Produce json
// @Param id path string true "Goal id"
// @Param request body request_models.UpdateGoalRequest true "Goal patch"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /wellness/progress/goals/{id} [put]
func (p *ProgressController) UpdateGoal(c *gin.Context) {
	var req request_models.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid goal id")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	goal, err := p.progressService.UpdateGoal(c.Request.Context(), profileID, goalID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, goal, "Goal updated successfully")
}

// ListGoals godoc
// @Summary List goals
// @Tags Progress
// @Produce json
// @Param status query string false "active, completed, paused or cancelled"
// @Success 200 {object} utils.APIResponse
// @Router /wellness/progress/goals [get]
func (p *ProgressController) ListGoals(c *gin.Context) {
	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	goals, err := p.progressService.ListGoals(c.Request.Context(), profileID, c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, goals, "Goals fetched successfully")
}

// Summary godoc
// @Summary Aggregated progress summary
// @Tags Progress
// @Produce json
// @Param period query string false "7d, 30d, 90d or all"
// @Success 200 {object} utils.APIResponse
// @Router /wellness/progress/summary [get]
func (p *ProgressController) Summary(c *gin.Context) {
	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	summary, err := p.progressService.Summary(c.Request.Context(), profileID, c.Query("period"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Summary fetched successfully")
}
