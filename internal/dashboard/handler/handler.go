package handler

import (
	"net/http"

	"github.com/ShivamTripathi028/ibis-stock-sync/internal/dashboard"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	uc     dashboard.UseCase
	logger *zap.Logger
}

func NewDashboardHandler(uc dashboard.UseCase, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, logger: log}
}

// GET /dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.uc.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
