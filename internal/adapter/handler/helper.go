package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-manager/errors"
	uerrors "github.com/johnquangdev/meeting-manager/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
	Info    string            `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging. Usecase sentinel
// errors are mapped to their AppError equivalents first; anything still
// unrecognized becomes an internal server error.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	if mapped, ok := mapUsecaseError(err); ok {
		err = mapped
	}

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
			Info:    info,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// mapUsecaseError translates usecase sentinels into AppErrors
func mapUsecaseError(err error) (errors.AppError, bool) {
	switch {
	case stdErrors.Is(err, uerrors.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials(), true
	case stdErrors.Is(err, uerrors.ErrEmailAlreadyUsed):
		return errors.ErrUserAlreadyExists(""), true
	case stdErrors.Is(err, uerrors.ErrUserNotFound):
		return errors.ErrUserNotFound(), true
	case stdErrors.Is(err, uerrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(""), true
	case stdErrors.Is(err, uerrors.ErrAlreadySummarized):
		return errors.ErrMeetingAlreadySummarized(""), true
	case stdErrors.Is(err, uerrors.ErrTranscriptRequired):
		return errors.ErrTranscriptRequired(""), true
	case stdErrors.Is(err, uerrors.ErrTaskNotFound):
		return errors.ErrTaskNotFound(""), true
	case stdErrors.Is(err, uerrors.ErrInvalidInput):
		return errors.ErrInvalidPayload(), true
	case stdErrors.Is(err, uerrors.ErrInvalidIdentifier):
		return errors.ErrInvalidArgument("invalid identifier"), true
	case stdErrors.Is(err, uerrors.ErrUnauthorized):
		return errors.ErrUnauthenticated(), true
	}
	return errors.AppError{}, false
}
