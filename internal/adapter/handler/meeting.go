package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-manager/errors"
	meetingDTO "github.com/johnquangdev/meeting-manager/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-manager/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-manager/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-manager/pkg/pagination"
)

// Meeting handles meeting HTTP requests
type Meeting struct {
	meetingService *meeting.Service
	logger         *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(meetingService *meeting.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// List returns the user's meetings, paginated
// GET /v1/meetings
func (h *Meeting) List(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	query := pagination.Query{
		Page:  c.QueryParam("page"),
		Limit: c.QueryParam("limit"),
	}

	result, err := h.meetingService.List(ctx, userID, query)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(result))
}

// Create stores a new meeting
// POST /v1/meetings
func (h *Meeting) Create(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req meetingDTO.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	created, err := h.meetingService.Create(ctx, userID, meeting.CreateInput{
		Title:        req.Title,
		Date:         req.Date,
		Duration:     req.Duration,
		Participants: req.Participants,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(created))
}

// Stats returns the user's meeting statistics snapshot
// GET /v1/meetings/stats
func (h *Meeting) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	stats, err := h.meetingService.Stats(ctx, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, stats)
}

// Get returns one meeting with its tasks
// GET /v1/meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetingID, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	detail, err := h.meetingService.Get(ctx, userID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingDetailResponse(detail))
}

// UpdateTranscript attaches a transcript to a meeting
// PUT /v1/meetings/:id/transcript
func (h *Meeting) UpdateTranscript(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetingID, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.UpdateTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	updated, err := h.meetingService.UpdateTranscript(ctx, userID, meetingID, meeting.TranscriptInput{
		Transcript:  req.Transcript,
		Summary:     req.Summary,
		ActionItems: req.ActionItems,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(updated))
}

// Summarize runs the summarization workflow on a meeting
// POST /v1/meetings/:id/summarize
func (h *Meeting) Summarize(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetingID, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.meetingService.Summarize(ctx, userID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSummarizeResponse(result))
}

// Sentiment returns the emotion breakdown of a meeting
// GET /v1/meetings/:id/sentiment
func (h *Meeting) Sentiment(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetingID, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	emotion, err := h.meetingService.Sentiment(ctx, userID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSentimentResponse(emotion))
}

// parseMeetingID parses the :id path parameter
func parseMeetingID(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.ErrInvalidMeetingID(raw)
	}
	return id, nil
}
