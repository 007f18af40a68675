package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/cache"
	uerrors "github.com/johnquangdev/meeting-manager/internal/usecase/errors"
	"github.com/johnquangdev/meeting-manager/pkg/ai"
)

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
	general  repositories.GeneralStatsRow
	top      []repositories.ParticipantCount
	weekdays []repositories.WeekdayCount

	generalErr  error
	updateCalls int
	statsCalls  int
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.meetings[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) Update(ctx context.Context, m *entities.Meeting) error {
	f.updateCalls++
	f.meetings[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok || m.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeMeetingRepo) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range f.meetings {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, m := range f.meetings {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeMeetingRepo) FindUpcoming(ctx context.Context, userID uuid.UUID, ref time.Time, limit int) ([]repositories.UpcomingMeetingRow, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) GeneralStats(ctx context.Context, userID uuid.UUID) (repositories.GeneralStatsRow, error) {
	f.statsCalls++
	if f.generalErr != nil {
		return repositories.GeneralStatsRow{}, f.generalErr
	}
	return f.general, nil
}

func (f *fakeMeetingRepo) TopParticipants(ctx context.Context, userID uuid.UUID, limit int) ([]repositories.ParticipantCount, error) {
	return f.top, nil
}

func (f *fakeMeetingRepo) CountByWeekday(ctx context.Context, userID uuid.UUID) ([]repositories.WeekdayCount, error) {
	return f.weekdays, nil
}

type fakeTaskRepo struct {
	tasks []*entities.Task
}

func (f *fakeTaskRepo) CreateBatch(ctx context.Context, tasks []*entities.Task) error {
	f.tasks = append(f.tasks, tasks...)
	return nil
}

func (f *fakeTaskRepo) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeTaskRepo) FindByMeeting(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Task, error) {
	var out []*entities.Task
	for _, t := range f.tasks {
		if t.MeetingID == meetingID && t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Task, error) {
	var out []*entities.Task
	for _, id := range ids {
		for _, t := range f.tasks {
			if t.ID == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) CountByStatus(ctx context.Context, userID uuid.UUID) ([]repositories.TaskStatusCount, error) {
	return nil, nil
}

func (f *fakeTaskRepo) FindOverdue(ctx context.Context, userID uuid.UUID, ref time.Time, limit int) ([]repositories.OverdueTaskRow, error) {
	return nil, nil
}

type fakeTaskCreator struct {
	repo  *fakeTaskRepo
	calls int
}

func (f *fakeTaskCreator) CreateFromActionItems(ctx context.Context, meetingID, userID uuid.UUID, items []string) ([]uuid.UUID, error) {
	f.calls++
	now := time.Now()
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		task := entities.NewTaskFromActionItem(meetingID, userID, item, now)
		if err := f.repo.CreateBatch(ctx, []*entities.Task{task}); err != nil {
			return nil, err
		}
		ids = append(ids, task.ID)
	}
	return ids, nil
}

type fakeSummarizer struct {
	result         *ai.SummaryResult
	err            error
	summarizeCalls int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, transcript string) (*ai.SummaryResult, error) {
	f.summarizeCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeSummarizer) AnalyzeEmotion(ctx context.Context) (*ai.EmotionResult, error) {
	return &ai.EmotionResult{Joy: 0.5, Anger: 0.3, Sadness: 0.2}, nil
}

func newTestService(meetingRepo *fakeMeetingRepo, taskRepo *fakeTaskRepo, summarizer *fakeSummarizer) *Service {
	return NewService(
		meetingRepo,
		taskRepo,
		&fakeTaskCreator{repo: taskRepo},
		summarizer,
		cache.NewMemoryStore(),
		5*time.Minute,
		zap.NewNop(),
	)
}

func seedMeeting(repo *fakeMeetingRepo, userID uuid.UUID, transcript string) *entities.Meeting {
	m := &entities.Meeting{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        "Weekly sync",
		Date:         time.Now(),
		Duration:     30,
		Participants: []string{"Alice", "Bob"},
	}
	if transcript != "" {
		m.Transcript = &transcript
	}
	repo.meetings[m.ID] = m
	return m
}

func TestSummarize_CreatesTasksAndTransitions(t *testing.T) {
	userID := uuid.New()
	meetingRepo := newFakeMeetingRepo()
	taskRepo := &fakeTaskRepo{}
	summarizer := &fakeSummarizer{result: &ai.SummaryResult{
		Summary:     "We agreed on the release plan.",
		ActionItems: []string{"Write release notes", "Update changelog", "Tag the release"},
	}}
	svc := newTestService(meetingRepo, taskRepo, summarizer)

	m := seedMeeting(meetingRepo, userID, "Long discussion about the release.")

	result, err := svc.Summarize(context.Background(), userID, m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(result.Tasks))
	}
	if !result.Meeting.IsSummarized {
		t.Fatal("expected meeting to be marked summarized")
	}
	if result.Meeting.SummarizedAt == nil {
		t.Fatal("expected summarizedAt to be set")
	}
	if result.Meeting.Summary == nil || *result.Meeting.Summary != "We agreed on the release plan." {
		t.Fatalf("unexpected summary: %v", result.Meeting.Summary)
	}
	for i, task := range result.Tasks {
		if task.Status != entities.TaskStatusPending {
			t.Fatalf("task %d: expected pending status, got %s", i, task.Status)
		}
	}
}

func TestSummarize_SecondCallFails(t *testing.T) {
	userID := uuid.New()
	meetingRepo := newFakeMeetingRepo()
	taskRepo := &fakeTaskRepo{}
	summarizer := &fakeSummarizer{result: &ai.SummaryResult{
		Summary:     "Summary.",
		ActionItems: []string{"One thing"},
	}}
	svc := newTestService(meetingRepo, taskRepo, summarizer)

	m := seedMeeting(meetingRepo, userID, "Transcript text here.")

	if _, err := svc.Summarize(context.Background(), userID, m.ID); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	tasksAfterFirst := len(taskRepo.tasks)

	_, err := svc.Summarize(context.Background(), userID, m.ID)
	if !errors.Is(err, uerrors.ErrAlreadySummarized) {
		t.Fatalf("expected ErrAlreadySummarized, got %v", err)
	}
	if len(taskRepo.tasks) != tasksAfterFirst {
		t.Fatalf("expected no additional tasks, got %d extra", len(taskRepo.tasks)-tasksAfterFirst)
	}
}

func TestSummarize_TranscriptRequired(t *testing.T) {
	userID := uuid.New()
	meetingRepo := newFakeMeetingRepo()
	summarizer := &fakeSummarizer{}
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, summarizer)

	m := seedMeeting(meetingRepo, userID, "")

	_, err := svc.Summarize(context.Background(), userID, m.ID)
	if !errors.Is(err, uerrors.ErrTranscriptRequired) {
		t.Fatalf("expected ErrTranscriptRequired, got %v", err)
	}
	if summarizer.summarizeCalls != 0 {
		t.Fatalf("summarizer must not be called without a transcript, got %d calls", summarizer.summarizeCalls)
	}
}

func TestSummarize_MeetingNotFound(t *testing.T) {
	svc := newTestService(newFakeMeetingRepo(), &fakeTaskRepo{}, &fakeSummarizer{})

	_, err := svc.Summarize(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, uerrors.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestStats_ZeroMeetings(t *testing.T) {
	meetingRepo := newFakeMeetingRepo()
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, &fakeSummarizer{})

	stats, err := svc.Stats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.GeneralStats != (GeneralStats{}) {
		t.Fatalf("expected zero general stats, got %+v", stats.GeneralStats)
	}
	if len(stats.TopParticipants) != 0 {
		t.Fatalf("expected no top participants, got %d", len(stats.TopParticipants))
	}
	if len(stats.MeetingsByWeekday) != 7 {
		t.Fatalf("expected 7 weekday buckets, got %d", len(stats.MeetingsByWeekday))
	}
	for i, wc := range stats.MeetingsByWeekday {
		if wc.DayOfWeek != i+1 || wc.Count != 0 {
			t.Fatalf("bucket %d: expected {%d 0}, got %+v", i, i+1, wc)
		}
	}
}

func TestStats_AveragesAndHistogram(t *testing.T) {
	meetingRepo := newFakeMeetingRepo()
	meetingRepo.general = repositories.GeneralStatsRow{
		TotalMeetings:     3,
		TotalParticipants: 7,
		ShortestMeeting:   15,
		LongestMeeting:    90,
		TotalDuration:     145,
	}
	meetingRepo.top = []repositories.ParticipantCount{
		{Participant: "A", MeetingCount: 3},
		{Participant: "B", MeetingCount: 2},
		{Participant: "C", MeetingCount: 1},
	}
	meetingRepo.weekdays = []repositories.WeekdayCount{
		{DayOfWeek: 2, Count: 2},
		{DayOfWeek: 6, Count: 1},
	}
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, &fakeSummarizer{})

	stats, err := svc.Stats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 7/3 rounds to 2, 145/3 rounds to 48.3
	if stats.GeneralStats.AverageParticipants != 2 {
		t.Fatalf("expected avg participants 2, got %v", stats.GeneralStats.AverageParticipants)
	}
	if stats.GeneralStats.AverageDuration != 48.3 {
		t.Fatalf("expected avg duration 48.3, got %v", stats.GeneralStats.AverageDuration)
	}

	if len(stats.MeetingsByWeekday) != 7 {
		t.Fatalf("expected 7 weekday buckets, got %d", len(stats.MeetingsByWeekday))
	}
	for i, wc := range stats.MeetingsByWeekday {
		if wc.DayOfWeek != i+1 {
			t.Fatalf("bucket %d out of order: %+v", i, wc)
		}
	}
	if stats.MeetingsByWeekday[1].Count != 2 || stats.MeetingsByWeekday[5].Count != 1 {
		t.Fatalf("unexpected histogram: %+v", stats.MeetingsByWeekday)
	}

	if stats.TopParticipants[0].Participant != "A" ||
		stats.TopParticipants[1].Participant != "B" ||
		stats.TopParticipants[2].Participant != "C" {
		t.Fatalf("unexpected top participant order: %+v", stats.TopParticipants)
	}
}

func TestStats_SecondCallServedFromCache(t *testing.T) {
	meetingRepo := newFakeMeetingRepo()
	meetingRepo.general = repositories.GeneralStatsRow{TotalMeetings: 1, TotalParticipants: 2, TotalDuration: 30}
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, &fakeSummarizer{})
	userID := uuid.New()

	if _, err := svc.Stats(context.Background(), userID); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if _, err := svc.Stats(context.Background(), userID); err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if meetingRepo.statsCalls != 1 {
		t.Fatalf("expected aggregation to run once, ran %d times", meetingRepo.statsCalls)
	}
}

func TestStats_AggregationErrorPropagates(t *testing.T) {
	meetingRepo := newFakeMeetingRepo()
	meetingRepo.generalErr = errors.New("db down")
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, &fakeSummarizer{})

	if _, err := svc.Stats(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error from failed aggregation")
	}
}

func TestGet_ReturnsMeetingWithTasks(t *testing.T) {
	userID := uuid.New()
	meetingRepo := newFakeMeetingRepo()
	taskRepo := &fakeTaskRepo{}
	svc := newTestService(meetingRepo, taskRepo, &fakeSummarizer{})

	m := seedMeeting(meetingRepo, userID, "")
	task := entities.NewTaskFromActionItem(m.ID, userID, "Follow up", time.Now())
	taskRepo.tasks = append(taskRepo.tasks, task)

	detail, err := svc.Get(context.Background(), userID, m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Meeting.ID != m.ID {
		t.Fatalf("unexpected meeting %s", detail.Meeting.ID)
	}
	if len(detail.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(detail.Tasks))
	}
}

func TestGet_OtherUsersMeetingIsNotFound(t *testing.T) {
	meetingRepo := newFakeMeetingRepo()
	svc := newTestService(meetingRepo, &fakeTaskRepo{}, &fakeSummarizer{})

	m := seedMeeting(meetingRepo, uuid.New(), "")

	_, err := svc.Get(context.Background(), uuid.New(), m.ID)
	if !errors.Is(err, uerrors.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}
