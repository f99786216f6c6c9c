package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellspring/internal/models/request_models"
	"wellspring/internal/services"
	"wellspring/pkg/middleware"
	"wellspring/pkg/utils"
)

type AIController struct {
	aiService services.AIServiceInterface
}

func NewAIController(aiService services.AIServiceInterface) *AIController {
	return &AIController{
		aiService: aiService,
	}
}

// AnalyzeMood godoc
// @Summary Analyze a free-text mood entry
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.MoodAnalysisRequest true "Mood text"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /ai/mood-analysis [post]
func (a *AIController) AnalyzeMood(c *gin.Context) {
	var req request_models.MoodAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	analysis, err := a.aiService.AnalyzeMood(c.Request.Context(), profileID, req.Text, req.Language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, analysis, "Mood analyzed successfully")
}

// Chat godoc
// @Summary Wellness assistant chat
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat message"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /ai/chat [post]
func (a *AIController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	reply, err := a.aiService.Chat(c.Request.Context(), profileID, req.Message, req.ConversationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Reply generated successfully")
}

// Report godoc
// @Summary Generate a wellness report
// @Description format=json returns the structured report, format=pdf streams a rendered document
// @Tags AI
// @Produce json
// @Produce application/pdf
// @Param format query string false "json or pdf"
// @Success 200 {object} utils.APIResponse
// @Router /ai/report [get]
func (a *AIController) Report(c *gin.Context) {
	profileID, err := middleware.ProfileIDFromContext(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	format := c.DefaultQuery("format", "json")
	report, raw, err := a.aiService.GenerateReport(c.Request.Context(), profileID, format)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if format == "pdf" {
		c.Header("Content-Disposition", `attachment; filename="wellness-report.pdf"`)
		c.Data(http.StatusOK, "application/pdf", raw)
		return
	}

	utils.RespondSuccess(c, report, "Report generated successfully")
}
