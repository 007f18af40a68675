package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-manager/errors"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-manager/internal/usecase/dashboard"
)

// Dashboard handles dashboard HTTP requests
type Dashboard struct {
	dashboardService *dashboard.Service
	logger           *zap.Logger
}

// NewDashboard creates a new dashboard handler
func NewDashboard(dashboardService *dashboard.Service, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Get returns the authenticated user's dashboard snapshot
// GET /v1/dashboard
func (h *Dashboard) Get(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	data, err := h.dashboardService.Dashboard(ctx, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, data)
}

// userIDFromContext reads the authenticated user set by the auth middleware
func userIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	return userID, ok
}
