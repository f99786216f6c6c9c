package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wellspring/internal/models/request_models"
	"wellspring/internal/services"
	"wellspring/pkg/middleware"
	"wellspring/pkg/utils"
)

// sessionController carries the handlers shared by the meditation and
// workout surfaces; each mounts its own service.
type sessionController struct {
	sessionService services.SessionServiceInterface
}

type MeditationController struct {
	sessionController
}

func NewMeditationController(sessionService services.SessionServiceInterface) *MeditationController {
	return &MeditationController{sessionController{sessionService: sessionService}}
}

type WorkoutController struct {
	sessionController
}

func NewWorkoutController(sessionService services.SessionServiceInterface) *WorkoutController {
	return &WorkoutController{sessionController{sessionService: sessionService}}
}

// Start godoc
// @Summary Start a session
// @Tags Wellness
// @Accept json
// @Produce json
// @Param request body request_models.StartSessionRequest true "Session payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /wellness/meditation/sessions [post]
func (s *sessionController) Start(c *gin.Context) {
	var req request_models.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	session, err := s.sessionService.Start(c.Request.Context(), profileID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, session, "Session started successfully")
}

// Complete godoc
// @Summary Complete a session
// @Tags Wellness
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request_models.CompleteSessionRequest true "Completion payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /wellness/meditation/sessions/{id}/complete [post]
func (s *sessionController) Complete(c *gin.Context) {
	var req request_models.CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	session, err := s.sessionService.Complete(c.Request.Context(), profileID, sessionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session completed successfully")
}

// SaveProgress godoc
// @Summary Save playback position
// @Tags Wellness
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request_models.SaveProgressRequest true "Progress payload"
// @Success 200 {object} utils.APIResponse
// @Router /wellness/meditation/sessions/{id}/progress [put]
func (s *sessionController) SaveProgress(c *gin.Context) {
	var req request_models.SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	session, err := s.sessionService.SaveProgress(c.Request.Context(), profileID, sessionID, req.PositionSeconds)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Progress saved successfully")
}

// Rate godoc
// @Summary Rate a completed session
// @Tags Wellness
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request_models.RateSessionRequest true "Rating payload"
// @Success 200 {object} utils.APIResponse
// @Router /wellness/meditation/sessions/{id}/rate [post]
func (s *sessionController) Rate(c *gin.Context) {
	var req request_models.RateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	session, err := s.sessionService.Rate(c.Request.Context(), profileID, sessionID, req.Rating)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session rated successfully")
}

// History godoc
// @Summary Paginated session history
// @Tags Wellness
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size (max 50)"
// @Param from query int false "Unix lower bound on started_at"
// @Param to query int false "Unix upper bound on started_at"
// @Success 200 {object} utils.APIResponse
// @Router /wellness/meditation/history [get]
func (s *sessionController) History(c *gin.Context) {
	page, limit, ok := parsePagination(c, 20)
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

	history, err := s.sessionService.History(c.Request.Context(), profileID, page, limit, from, to)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "History fetched successfully")
}

// Stats godoc
// @Summary Aggregated session stats
// @Tags Wellness
// @Produce json
// @Param period query string false "7d, 30d, 90d or all"
// @Success 200 {object} utils.APIResponse
// @Router /wellness/meditation/stats [get]
func (s *sessionController) Stats(c *gin.Context) {
	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	stats, err := s.sessionService.Stats(c.Request.Context(), profileID, c.Query("period"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}

// parsePagination reads page/limit query params. Malformed or
// non-positive values respond 400 and return ok=false.
func parsePagination(c *gin.Context, defaultLimit int) (page, limit int, ok bool) {
	page = 1
	limit = defaultLimit

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.HandleServiceError(c, utils.ErrInvalidPage)
			return 0, 0, false
		}
		page = n
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.HandleServiceError(c, utils.ErrInvalidPageSize)
			return 0, 0, false
		}
		limit = n
	}
	return page, limit, true
}

func parseInt64Query(c *gin.Context, key string) int64 {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
