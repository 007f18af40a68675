package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
	"github.com/johnquangdev/meeting-manager/internal/infrastructure/cache"
)

type stubMeetingRepo struct {
	upcoming    []repositories.UpcomingMeetingRow
	upcomingErr error
	total       int64
	calls       int
}

func (s *stubMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error { return nil }
func (s *stubMeetingRepo) Update(ctx context.Context, m *entities.Meeting) error { return nil }

func (s *stubMeetingRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Meeting, error) {
	return nil, errors.New("not implemented")
}

func (s *stubMeetingRepo) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, error) {
	return nil, nil
}

func (s *stubMeetingRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.total, nil
}

func (s *stubMeetingRepo) FindUpcoming(ctx context.Context, userID uuid.UUID, ref time.Time, limit int) ([]repositories.UpcomingMeetingRow, error) {
	s.calls++
	if s.upcomingErr != nil {
		return nil, s.upcomingErr
	}
	return s.upcoming, nil
}

func (s *stubMeetingRepo) GeneralStats(ctx context.Context, userID uuid.UUID) (repositories.GeneralStatsRow, error) {
	return repositories.GeneralStatsRow{}, nil
}

func (s *stubMeetingRepo) TopParticipants(ctx context.Context, userID uuid.UUID, limit int) ([]repositories.ParticipantCount, error) {
	return nil, nil
}

func (s *stubMeetingRepo) CountByWeekday(ctx context.Context, userID uuid.UUID) ([]repositories.WeekdayCount, error) {
	return nil, nil
}

type stubTaskRepo struct {
	statusCounts []repositories.TaskStatusCount
	overdue      []repositories.OverdueTaskRow
	overdueErr   error
}

func (s *stubTaskRepo) CreateBatch(ctx context.Context, tasks []*entities.Task) error { return nil }

func (s *stubTaskRepo) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Task, error) {
	return nil, nil
}

func (s *stubTaskRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubTaskRepo) FindByMeeting(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Task, error) {
	return nil, nil
}

func (s *stubTaskRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Task, error) {
	return nil, nil
}

func (s *stubTaskRepo) CountByStatus(ctx context.Context, userID uuid.UUID) ([]repositories.TaskStatusCount, error) {
	return s.statusCounts, nil
}

func (s *stubTaskRepo) FindOverdue(ctx context.Context, userID uuid.UUID, ref time.Time, limit int) ([]repositories.OverdueTaskRow, error) {
	if s.overdueErr != nil {
		return nil, s.overdueErr
	}
	return s.overdue, nil
}

func newTestService(meetingRepo *stubMeetingRepo, taskRepo *stubTaskRepo) *Service {
	return NewService(meetingRepo, taskRepo, cache.NewMemoryStore(), 5*time.Minute)
}

func TestDashboard_ZeroData(t *testing.T) {
	svc := newTestService(&stubMeetingRepo{}, &stubTaskRepo{})

	data, err := svc.Dashboard(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.TotalMeetings != 0 {
		t.Fatalf("expected 0 meetings, got %d", data.TotalMeetings)
	}
	if data.TaskSummary != (TaskSummary{}) {
		t.Fatalf("expected zero task summary, got %+v", data.TaskSummary)
	}
	if data.UpcomingMeetings == nil || len(data.UpcomingMeetings) != 0 {
		t.Fatalf("expected empty upcoming slice, got %v", data.UpcomingMeetings)
	}
	if data.OverdueTasks == nil || len(data.OverdueTasks) != 0 {
		t.Fatalf("expected empty overdue slice, got %v", data.OverdueTasks)
	}
}

func TestDashboard_StatusMapping(t *testing.T) {
	taskRepo := &stubTaskRepo{statusCounts: []repositories.TaskStatusCount{
		{Status: entities.TaskStatusPending, Count: 4},
		{Status: entities.TaskStatusInProgress, Count: 2},
		{Status: "garbage", Count: 9},
	}}
	svc := newTestService(&stubMeetingRepo{total: 3}, taskRepo)

	data, err := svc.Dashboard(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := TaskSummary{Pending: 4, InProgress: 2, Completed: 0}
	if data.TaskSummary != want {
		t.Fatalf("expected %+v, got %+v", want, data.TaskSummary)
	}
	if data.TotalMeetings != 3 {
		t.Fatalf("expected 3 meetings, got %d", data.TotalMeetings)
	}
}

func TestDashboard_ProjectionsPassThrough(t *testing.T) {
	meetingID := uuid.New()
	meetingRepo := &stubMeetingRepo{
		total: 1,
		upcoming: []repositories.UpcomingMeetingRow{
			{ID: meetingID, Title: "Planning", Date: time.Now().Add(time.Hour), ParticipantCount: 3},
		},
	}
	taskRepo := &stubTaskRepo{
		overdue: []repositories.OverdueTaskRow{
			{ID: uuid.New(), Title: "Ship it", DueDate: time.Now().Add(-time.Hour), MeetingID: meetingID, MeetingTitle: "Planning"},
		},
	}
	svc := newTestService(meetingRepo, taskRepo)

	data, err := svc.Dashboard(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.UpcomingMeetings) != 1 || data.UpcomingMeetings[0].ParticipantCount != 3 {
		t.Fatalf("unexpected upcoming meetings: %+v", data.UpcomingMeetings)
	}
	if len(data.OverdueTasks) != 1 || data.OverdueTasks[0].MeetingTitle != "Planning" {
		t.Fatalf("unexpected overdue tasks: %+v", data.OverdueTasks)
	}
}

func TestDashboard_FailFast(t *testing.T) {
	wantErr := errors.New("db down")
	svc := newTestService(&stubMeetingRepo{upcomingErr: wantErr}, &stubTaskRepo{})

	_, err := svc.Dashboard(context.Background(), uuid.New())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
}

func TestDashboard_SecondCallServedFromCache(t *testing.T) {
	meetingRepo := &stubMeetingRepo{total: 2}
	svc := newTestService(meetingRepo, &stubTaskRepo{})
	userID := uuid.New()

	if _, err := svc.Dashboard(context.Background(), userID); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if _, err := svc.Dashboard(context.Background(), userID); err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if meetingRepo.calls != 1 {
		t.Fatalf("expected queries to run once, ran %d times", meetingRepo.calls)
	}
}

func TestDashboard_CacheIsPerUser(t *testing.T) {
	meetingRepo := &stubMeetingRepo{}
	svc := newTestService(meetingRepo, &stubTaskRepo{})

	if _, err := svc.Dashboard(context.Background(), uuid.New()); err != nil {
		t.Fatalf("first user failed: %v", err)
	}
	if _, err := svc.Dashboard(context.Background(), uuid.New()); err != nil {
		t.Fatalf("second user failed: %v", err)
	}

	if meetingRepo.calls != 2 {
		t.Fatalf("expected per-user computation, got %d calls", meetingRepo.calls)
	}
}
