package presenter

import (
	"github.com/johnquangdev/meeting-manager/internal/adapter/dto/common"
	taskDTO "github.com/johnquangdev/meeting-manager/internal/adapter/dto/task"
	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/usecase/task"
)

// ToTaskResponse converts a Task entity to TaskResponse DTO
func ToTaskResponse(t *entities.Task) *taskDTO.TaskResponse {
	if t == nil {
		return nil
	}
	return &taskDTO.TaskResponse{
		ID:          t.ID.String(),
		MeetingID:   t.MeetingID.String(),
		UserID:      t.UserID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTaskResponses converts a slice of Task entities
func ToTaskResponses(tasks []*entities.Task) []*taskDTO.TaskResponse {
	out := make([]*taskDTO.TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskResponse(t)
	}
	return out
}

// ToTaskListResponse converts a task list result to the list envelope
func ToTaskListResponse(result *task.ListResult) *common.ListResponse {
	return &common.ListResponse{
		Data:  ToTaskResponses(result.Tasks),
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	}
}
