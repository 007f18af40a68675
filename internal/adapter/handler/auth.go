package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-manager/errors"
	authDTO "github.com/johnquangdev/meeting-manager/internal/adapter/dto/auth"
	"github.com/johnquangdev/meeting-manager/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-manager/internal/usecase/auth"
	"github.com/johnquangdev/meeting-manager/pkg/jwt"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
	jwtManager  *jwt.Manager
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, jwtManager *jwt.Manager, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		jwtManager:  jwtManager,
		logger:      logger,
	}
}

// Register creates a new user account
// POST /v1/auth/register
func (h *Auth) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	user, err := h.authService.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToUserResponse(user))
}

// Login verifies credentials and returns an access token
// POST /v1/auth/login
func (h *Auth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	expiresIn := int(h.jwtManager.GetExpiry().Seconds())
	return HandleSuccess(h.logger, c, presenter.ToAuthResponse(result, expiresIn))
}
