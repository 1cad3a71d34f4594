// internals/features/tasks/dto/task_comment_dto.go
package dto

import (
	"strings"

	taskModel "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/model"
	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
)

type TaskCommentRequest struct {
	Body string `json:"body" validate:"required,max=4000"`
}

func (r *TaskCommentRequest) Normalize() {
	r.Body = strings.TrimSpace(r.Body)
}

type TaskCommentResponse struct {
	taskModel.TaskCommentModel
	Author *userModel.UserSummary `json:"author,omitempty"`
}

func FromTaskCommentModel(m taskModel.TaskCommentModel) TaskCommentResponse {
	return TaskCommentResponse{
		TaskCommentModel: m,
		Author:           m.Author.Summary(),
	}
}

func FromTaskCommentModels(ms []taskModel.TaskCommentModel) []TaskCommentResponse {
	out := make([]TaskCommentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromTaskCommentModel(m))
	}
	return out
}
