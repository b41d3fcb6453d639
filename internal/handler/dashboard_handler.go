package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-records/internal/models"
	appErrors "github.com/noah-isme/school-records/pkg/errors"
	"github.com/noah-isme/school-records/pkg/response"
)

type dashboardService interface {
	Overview(ctx context.Context) (*models.Overview, error)
	Ready(ctx context.Context) error
}

// DashboardHandler wires the dashboard service to the landing page and the
// readiness probe.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Index godoc
// @Summary Overview of every record with counts
// @Tags Dashboard
// @Produce html
// @Success 200
// @Router / [get]
func (h *DashboardHandler) Index(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, http.StatusOK, "index.html", gin.H{"Title": "Overview", "Overview": overview})
}

// Ready godoc
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /ready [get]
func (h *DashboardHandler) Ready(c *gin.Context) {
	if err := h.service.Ready(c.Request.Context()); err != nil {
		appErr := appErrors.FromError(err)
		_ = c.Error(err)
		c.JSON(appErr.Status, response.Envelope{Error: appErr})
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "ready"})
}
