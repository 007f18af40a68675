package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
)

// UpcomingMeetingRow is the projection used by the dashboard upcoming-meetings query
type UpcomingMeetingRow struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Date             time.Time `json:"date"`
	ParticipantCount int       `json:"participantCount"`
}

// GeneralStatsRow holds the raw aggregate over a user's meetings.
// Averages are derived in the usecase layer so the zero-meetings case
// never divides.
type GeneralStatsRow struct {
	TotalMeetings     int64 `json:"totalMeetings"`
	TotalParticipants int64 `json:"totalParticipants"`
	ShortestMeeting   int   `json:"shortestMeeting"`
	LongestMeeting    int   `json:"longestMeeting"`
	TotalDuration     int64 `json:"totalDuration"`
}

// ParticipantCount is one row of the top-participants group-by
type ParticipantCount struct {
	Participant  string `json:"participant"`
	MeetingCount int64  `json:"meetingCount"`
}

// WeekdayCount is one row of the meetings-by-weekday group-by.
// DayOfWeek uses 1=Sunday..7=Saturday.
type WeekdayCount struct {
	DayOfWeek int   `json:"dayOfWeek"`
	Count     int64 `json:"count"`
}

// MeetingRepository defines meeting persistence and aggregation operations
type MeetingRepository interface {
	Create(ctx context.Context, meeting *entities.Meeting) error
	Update(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting scoped to its owner
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Meeting, error)
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// FindUpcoming returns meetings with date >= ref, soonest first, projected
	// to the dashboard row shape
	FindUpcoming(ctx context.Context, userID uuid.UUID, ref time.Time, limit int) ([]UpcomingMeetingRow, error)

	// Aggregations backing the meeting-stats snapshot
	GeneralStats(ctx context.Context, userID uuid.UUID) (GeneralStatsRow, error)
	TopParticipants(ctx context.Context, userID uuid.UUID, limit int) ([]ParticipantCount, error)
	CountByWeekday(ctx context.Context, userID uuid.UUID) ([]WeekdayCount, error)
}
