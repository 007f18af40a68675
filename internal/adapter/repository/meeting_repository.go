package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// Update updates an existing meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Save(meeting).Error
}

// FindByID retrieves a meeting scoped to its owner
func (r *meetingRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// FindByUser retrieves a user's meetings, newest first, with pagination
func (r *meetingRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&meetings).Error
	return meetings, err
}

// CountByUser counts a user's meetings
func (r *meetingRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// FindUpcoming returns future meetings, soonest first, projected to the
// dashboard row shape with the participant list collapsed to its size
func (r *meetingRepository) FindUpcoming(ctx context.Context, userID uuid.UUID, ref time.Time, limit int) ([]repositories.UpcomingMeetingRow, error) {
	var rows []repositories.UpcomingMeetingRow
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Select("id, title, date, jsonb_array_length(participants) AS participant_count").
		Where("user_id = ? AND date >= ?", userID, ref).
		Order("date ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// GeneralStats aggregates totals over a user's meetings in one pass
func (r *meetingRepository) GeneralStats(ctx context.Context, userID uuid.UUID) (repositories.GeneralStatsRow, error) {
	var row repositories.GeneralStatsRow
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Select(`COUNT(*) AS total_meetings,
			COALESCE(SUM(jsonb_array_length(participants)), 0) AS total_participants,
			COALESCE(MIN(duration), 0) AS shortest_meeting,
			COALESCE(MAX(duration), 0) AS longest_meeting,
			COALESCE(SUM(duration), 0) AS total_duration`).
		Where("user_id = ?", userID).
		Scan(&row).Error
	return row, err
}

// TopParticipants unnests the participant lists and counts appearances per name
func (r *meetingRepository) TopParticipants(ctx context.Context, userID uuid.UUID, limit int) ([]repositories.ParticipantCount, error) {
	var rows []repositories.ParticipantCount
	err := r.db.WithContext(ctx).
		Raw(`SELECT p AS participant, COUNT(*) AS meeting_count
			FROM meetings, jsonb_array_elements_text(participants) AS p
			WHERE user_id = ?
			GROUP BY p
			ORDER BY meeting_count DESC, participant ASC
			LIMIT ?`, userID, limit).
		Scan(&rows).Error
	return rows, err
}

// CountByWeekday groups meeting counts by day of week (1=Sunday..7=Saturday).
// Days without meetings are absent; the usecase layer zero-fills them.
func (r *meetingRepository) CountByWeekday(ctx context.Context, userID uuid.UUID) ([]repositories.WeekdayCount, error) {
	var rows []repositories.WeekdayCount
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Select("EXTRACT(DOW FROM date)::int + 1 AS day_of_week, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("day_of_week").
		Order("day_of_week ASC").
		Scan(&rows).Error
	return rows, err
}
