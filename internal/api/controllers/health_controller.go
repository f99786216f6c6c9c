package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wellspring/pkg/utils"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Check godoc
// @Summary Liveness and database health
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthController) Check(c *gin.Context) {
	status := gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		utils.RespondError(c, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	status["database"] = "ok"

	utils.RespondSuccess(c, status, "Service healthy")
}
