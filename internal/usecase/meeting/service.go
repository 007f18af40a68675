package meeting

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/cache"
	uerrors "github.com/johnquangdev/meeting-manager/internal/usecase/errors"
	"github.com/johnquangdev/meeting-manager/pkg/ai"
	"github.com/johnquangdev/meeting-manager/pkg/pagination"
)

const (
	statsCacheKeyPrefix = "meeting-stats-"
	topParticipantLimit = 5
)

// TaskCreator bulk-creates tasks from a summarized meeting's action items.
type TaskCreator interface {
	CreateFromActionItems(ctx context.Context, meetingID, userID uuid.UUID, actionItems []string) ([]uuid.UUID, error)
}

// Service handles meeting business logic
type Service struct {
	meetingRepo repositories.MeetingRepository
	taskRepo    repositories.TaskRepository
	taskCreator TaskCreator
	summarizer  ai.Summarizer
	store       cache.Store
	cacheTTL    time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a new meeting service
func NewService(
	meetingRepo repositories.MeetingRepository,
	taskRepo repositories.TaskRepository,
	taskCreator TaskCreator,
	summarizer ai.Summarizer,
	store cache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		taskRepo:    taskRepo,
		taskCreator: taskCreator,
		summarizer:  summarizer,
		store:       store,
		cacheTTL:    cacheTTL,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateInput carries the fields of a new meeting
type CreateInput struct {
	Title        string
	Date         time.Time
	Duration     int
	Participants []string
}

// TranscriptInput carries a transcript update
type TranscriptInput struct {
	Transcript  string
	Summary     *string
	ActionItems []string
}

// ListResult is the paginated meeting list envelope
type ListResult struct {
	Meetings []*entities.Meeting
	Total    int64
	Page     int
	Limit    int
}

// Detail is a meeting together with the tasks it spawned
type Detail struct {
	Meeting *entities.Meeting
	Tasks   []*entities.Task
}

// SummarizeResult is returned by Summarize
type SummarizeResult struct {
	Meeting *entities.Meeting
	Tasks   []*entities.Task
}

// GeneralStats aggregates duration and participant figures across a user's
// meetings. All fields are zero when the user has no meetings.
type GeneralStats struct {
	TotalMeetings       int64   `json:"totalMeetings"`
	TotalParticipants   int64   `json:"totalParticipants"`
	ShortestMeeting     int     `json:"shortestMeeting"`
	LongestMeeting      int     `json:"longestMeeting"`
	AverageParticipants float64 `json:"averageParticipants"`
	AverageDuration     float64 `json:"averageDuration"`
}

// WeekdayCount is one histogram bucket, 1=Sunday through 7=Saturday
type WeekdayCount struct {
	DayOfWeek int   `json:"dayOfWeek"`
	Count     int64 `json:"count"`
}

// Stats is the cached meeting statistics snapshot
type Stats struct {
	GeneralStats      GeneralStats                    `json:"generalStats"`
	TopParticipants   []repositories.ParticipantCount `json:"topParticipants"`
	MeetingsByWeekday []WeekdayCount                  `json:"meetingsByDayOfWeek"`
}

// Create stores a new meeting for the user
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*entities.Meeting, error) {
	meeting := &entities.Meeting{
		UserID:       userID,
		Title:        input.Title,
		Date:         input.Date,
		Duration:     input.Duration,
		Participants: input.Participants,
	}
	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return meeting, nil
}

// List retrieves a user's meetings, most recent date first
func (s *Service) List(ctx context.Context, userID uuid.UUID, query pagination.Query) (*ListResult, error) {
	p := pagination.Validate(query, pagination.DefaultOptions())

	meetings, err := s.meetingRepo.FindByUser(ctx, userID, p.Limit, p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	total, err := s.meetingRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count meetings: %w", err)
	}

	return &ListResult{
		Meetings: meetings,
		Total:    total,
		Page:     p.Page,
		Limit:    p.Limit,
	}, nil
}

// Get retrieves an owned meeting together with its tasks
func (s *Service) Get(ctx context.Context, userID, meetingID uuid.UUID) (*Detail, error) {
	meeting, err := s.findOwned(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByMeeting(ctx, meetingID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting tasks: %w", err)
	}

	return &Detail{Meeting: meeting, Tasks: tasks}, nil
}

// UpdateTranscript sets the transcript (and optionally a manual summary with
// action items) on an owned meeting.
func (s *Service) UpdateTranscript(ctx context.Context, userID, meetingID uuid.UUID, input TranscriptInput) (*entities.Meeting, error) {
	meeting, err := s.findOwned(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}

	meeting.Transcript = &input.Transcript
	if input.Summary != nil {
		meeting.Summary = input.Summary
	}
	if len(input.ActionItems) > 0 {
		meeting.ActionItems = input.ActionItems
	}

	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to update transcript: %w", err)
	}
	return meeting, nil
}

// Summarize runs the summarization workflow on an owned meeting: guard
// checks, the AI call, bulk task creation and the meeting state transition.
// Task creation and the meeting update are two separate writes; a failure
// between them leaves the created tasks in place and is logged.
func (s *Service) Summarize(ctx context.Context, userID, meetingID uuid.UUID) (*SummarizeResult, error) {
	meeting, err := s.findOwned(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}

	if meeting.IsSummarized {
		return nil, uerrors.ErrAlreadySummarized
	}
	if !meeting.HasTranscript() {
		return nil, uerrors.ErrTranscriptRequired
	}

	result, err := s.summarizer.Summarize(ctx, *meeting.Transcript)
	if err != nil {
		return nil, fmt.Errorf("summarization failed: %w", err)
	}

	taskIDs, err := s.taskCreator.CreateFromActionItems(ctx, meetingID, userID, result.ActionItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks: %w", err)
	}

	meeting.MarkSummarized(result.Summary, result.ActionItems, s.now())
	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		s.logger.Error("meeting update failed after task creation",
			zap.String("meeting_id", meetingID.String()),
			zap.Int("tasks_created", len(taskIDs)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	tasks, err := s.taskRepo.FindByIDs(ctx, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load created tasks: %w", err)
	}

	return &SummarizeResult{Meeting: meeting, Tasks: tasks}, nil
}

// Sentiment returns the emotion breakdown for an owned meeting
func (s *Service) Sentiment(ctx context.Context, userID, meetingID uuid.UUID) (*ai.EmotionResult, error) {
	if _, err := s.findOwned(ctx, meetingID, userID); err != nil {
		return nil, err
	}

	emotion, err := s.summarizer.AnalyzeEmotion(ctx)
	if err != nil {
		return nil, fmt.Errorf("emotion analysis failed: %w", err)
	}
	return emotion, nil
}

// Stats returns the user's meeting statistics snapshot, served from cache
// when a live entry exists.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	key := statsCacheKeyPrefix + userID.String()
	return cache.GetOrSet(ctx, s.store, key, s.cacheTTL, func(ctx context.Context) (*Stats, error) {
		return s.computeStats(ctx, userID)
	})
}

func (s *Service) computeStats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	var (
		general  repositories.GeneralStatsRow
		top      []repositories.ParticipantCount
		weekdays []repositories.WeekdayCount
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		row, err := s.meetingRepo.GeneralStats(gctx, userID)
		if err != nil {
			return fmt.Errorf("general stats query failed: %w", err)
		}
		general = row
		return nil
	})

	g.Go(func() error {
		rows, err := s.meetingRepo.TopParticipants(gctx, userID, topParticipantLimit)
		if err != nil {
			return fmt.Errorf("top participants query failed: %w", err)
		}
		top = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.meetingRepo.CountByWeekday(gctx, userID)
		if err != nil {
			return fmt.Errorf("weekday histogram query failed: %w", err)
		}
		weekdays = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if top == nil {
		top = []repositories.ParticipantCount{}
	}

	return &Stats{
		GeneralStats:      buildGeneralStats(general),
		TopParticipants:   top,
		MeetingsByWeekday: fillWeekdays(weekdays),
	}, nil
}

// buildGeneralStats derives the averages, returning the zero record when the
// user has no meetings so no division happens.
func buildGeneralStats(row repositories.GeneralStatsRow) GeneralStats {
	if row.TotalMeetings == 0 {
		return GeneralStats{}
	}
	n := float64(row.TotalMeetings)
	return GeneralStats{
		TotalMeetings:       row.TotalMeetings,
		TotalParticipants:   row.TotalParticipants,
		ShortestMeeting:     row.ShortestMeeting,
		LongestMeeting:      row.LongestMeeting,
		AverageParticipants: math.Round(float64(row.TotalParticipants) / n),
		AverageDuration:     math.Round(float64(row.TotalDuration)/n*10) / 10,
	}
}

// fillWeekdays expands a sparse day-of-week grouping to all 7 buckets,
// 1=Sunday through 7=Saturday, ascending.
func fillWeekdays(rows []repositories.WeekdayCount) []WeekdayCount {
	counts := make(map[int]int64, len(rows))
	for _, r := range rows {
		counts[r.DayOfWeek] = r.Count
	}

	out := make([]WeekdayCount, 7)
	for day := 1; day <= 7; day++ {
		out[day-1] = WeekdayCount{DayOfWeek: day, Count: counts[day]}
	}
	return out
}

func (s *Service) findOwned(ctx context.Context, meetingID, userID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uerrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}
	return meeting, nil
}
