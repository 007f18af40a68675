package presenter

import (
	"github.com/johnquangdev/meeting-manager/internal/adapter/dto/common"
	meetingDTO "github.com/johnquangdev/meeting-manager/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-manager/pkg/ai"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	if m == nil {
		return nil
	}

	actionItems := []string(m.ActionItems)
	if actionItems == nil {
		actionItems = []string{}
	}

	return &meetingDTO.MeetingResponse{
		ID:           m.ID.String(),
		UserID:       m.UserID.String(),
		Title:        m.Title,
		Date:         m.Date,
		Duration:     m.Duration,
		Participants: []string(m.Participants),
		Transcript:   m.Transcript,
		Summary:      m.Summary,
		ActionItems:  actionItems,
		IsSummarized: m.IsSummarized,
		SummarizedAt: m.SummarizedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToMeetingListResponse converts a meeting list result to the list envelope
func ToMeetingListResponse(result *meeting.ListResult) *common.ListResponse {
	meetings := make([]*meetingDTO.MeetingResponse, len(result.Meetings))
	for i, m := range result.Meetings {
		meetings[i] = ToMeetingResponse(m)
	}
	return &common.ListResponse{
		Data:  meetings,
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	}
}

// ToMeetingDetailResponse converts a meeting detail to its DTO
func ToMeetingDetailResponse(detail *meeting.Detail) *meetingDTO.MeetingDetailResponse {
	if detail == nil {
		return nil
	}
	return &meetingDTO.MeetingDetailResponse{
		Meeting: ToMeetingResponse(detail.Meeting),
		Tasks:   ToTaskResponses(detail.Tasks),
	}
}

// ToSummarizeResponse converts a summarize result to its DTO
func ToSummarizeResponse(result *meeting.SummarizeResult) *meetingDTO.SummarizeResponse {
	if result == nil {
		return nil
	}
	return &meetingDTO.SummarizeResponse{
		Meeting: ToMeetingResponse(result.Meeting),
		Tasks:   ToTaskResponses(result.Tasks),
	}
}

// ToSentimentResponse converts an emotion result to its DTO
func ToSentimentResponse(emotion *ai.EmotionResult) *meetingDTO.SentimentResponse {
	if emotion == nil {
		return nil
	}
	return &meetingDTO.SentimentResponse{
		Joy:     emotion.Joy,
		Anger:   emotion.Anger,
		Sadness: emotion.Sadness,
	}
}
