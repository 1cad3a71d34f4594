// internals/features/tasks/dto/task_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	taskModel "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/model"
	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
)

type TaskRequest struct {
	Type          string         `json:"type" validate:"omitempty,oneof=general classes programming-contests contest-video-solutions email-marketing payments"`
	Title         string         `json:"title" validate:"required,max=240"`
	Description   string         `json:"description" validate:"omitempty"`
	Status        string         `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS IN_REVIEW COMPLETED BLOCKED"`
	Priority      string         `json:"priority" validate:"omitempty"`
	CourseName    string         `json:"course_name" validate:"omitempty,max=80"`
	BatchNo       string         `json:"batch_no" validate:"omitempty,max=20"`
	ContestName   *string        `json:"contest_name" validate:"omitempty,max=160"`
	EstimatedTime *string        `json:"estimated_time" validate:"omitempty,max=40"`
	AssignedToID  *uuid.UUID     `json:"assigned_to_id" validate:"omitempty"`
	ReportedToID  *uuid.UUID     `json:"reported_to_id" validate:"omitempty"`
	StartDate     *time.Time     `json:"start_date" validate:"omitempty"`
	DueDate       *time.Time     `json:"due_date" validate:"omitempty"`
	Labels        []string       `json:"labels" validate:"omitempty,dive,max=40"`
	Meta          datatypes.JSON `json:"meta" validate:"omitempty"`
}

func (r *TaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.BatchNo = strings.TrimSpace(r.BatchNo)
	r.ContestName = helper.TrimPtr(r.ContestName)
	r.EstimatedTime = helper.TrimPtr(r.EstimatedTime)
	if r.Type == "" {
		r.Type = constants.KindGeneral
	}
	if r.Status == "" {
		r.Status = constants.StatusTodo
	}
	r.Priority = constants.NormalizePriority(r.Priority)
}

func (r *TaskRequest) ToModel() taskModel.TaskModel {
	return taskModel.TaskModel{
		TaskType:          r.Type,
		TaskTitle:         r.Title,
		TaskDescription:   r.Description,
		TaskStatus:        r.Status,
		TaskPriority:      r.Priority,
		TaskCourseName:    r.CourseName,
		TaskBatchNo:       r.BatchNo,
		TaskContestName:   r.ContestName,
		TaskEstimatedTime: r.EstimatedTime,
		TaskAssignedToID:  r.AssignedToID,
		TaskReportedToID:  r.ReportedToID,
		TaskStartDate:     r.StartDate,
		TaskDueDate:       r.DueDate,
		TaskLabels:        pq.StringArray(r.Labels),
		TaskMeta:          r.Meta,
	}
}

// ApplyTo leaves task_type and task_source_id alone: a card keeps its
// origin tag for life so the synchronizer can still find it.
func (r *TaskRequest) ApplyTo(m *taskModel.TaskModel) {
	m.TaskTitle = r.Title
	m.TaskDescription = r.Description
	m.TaskStatus = r.Status
	m.TaskPriority = r.Priority
	m.TaskCourseName = r.CourseName
	m.TaskBatchNo = r.BatchNo
	m.TaskContestName = r.ContestName
	m.TaskEstimatedTime = r.EstimatedTime
	m.TaskAssignedToID = r.AssignedToID
	m.TaskReportedToID = r.ReportedToID
	m.TaskStartDate = r.StartDate
	m.TaskDueDate = r.DueDate
	m.TaskLabels = pq.StringArray(r.Labels)
	m.TaskMeta = r.Meta
}

type TaskResponse struct {
	taskModel.TaskModel
	AssignedTo *userModel.UserSummary `json:"assigned_to,omitempty"`
	ReportedTo *userModel.UserSummary `json:"reported_to,omitempty"`
}

func FromTaskModel(m taskModel.TaskModel) TaskResponse {
	return TaskResponse{
		TaskModel:  m,
		AssignedTo: m.AssignedTo.Summary(),
		ReportedTo: m.ReportedTo.Summary(),
	}
}

func FromTaskModels(ms []taskModel.TaskModel) []TaskResponse {
	out := make([]TaskResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromTaskModel(m))
	}
	return out
}

// BoardColumn is one swimlane of the grouped board view.
type BoardColumn struct {
	Status string         `json:"status"`
	Count  int            `json:"count"`
	Tasks  []TaskResponse `json:"tasks"`
}

// GroupBoard buckets tasks into one column per workflow status, in
// canonical column order, including empty columns.
func GroupBoard(ms []taskModel.TaskModel) []BoardColumn {
	byStatus := make(map[string][]TaskResponse, len(constants.Statuses))
	for _, m := range ms {
		byStatus[m.TaskStatus] = append(byStatus[m.TaskStatus], FromTaskModel(m))
	}
	cols := make([]BoardColumn, 0, len(constants.Statuses))
	for _, s := range constants.Statuses {
		tasks := byStatus[s]
		if tasks == nil {
			tasks = []TaskResponse{}
		}
		cols = append(cols, BoardColumn{Status: s, Count: len(tasks), Tasks: tasks})
	}
	return cols
}
