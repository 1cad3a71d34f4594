// internals/features/marketing/dto/marketing_task_dto.go
package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	marketingModel "github.com/maruf-pfc/opsboard-sub000/internals/features/marketing/model"
	"github.com/maruf-pfc/opsboard-sub000/internals/features/mirror"
	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
)

type MarketingTaskRequest struct {
	Title        string     `json:"title" validate:"required,max=160"`
	Description  *string    `json:"description" validate:"omitempty"`
	CourseName   string     `json:"course_name" validate:"required,max=80"`
	BatchNo      int        `json:"batch_no" validate:"required,min=1"`
	ScheduledFor *time.Time `json:"scheduled_for" validate:"omitempty"`
	DueDate      *time.Time `json:"due_date" validate:"omitempty"`
	Status       string     `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS IN_REVIEW COMPLETED BLOCKED"`
	Priority     string     `json:"priority" validate:"omitempty"`
	AssignedToID *uuid.UUID `json:"assigned_to_id" validate:"omitempty"`
	ReportedToID *uuid.UUID `json:"reported_to_id" validate:"omitempty"`
}

func (r *MarketingTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.Description = helper.TrimPtr(r.Description)
	if r.Status == "" {
		r.Status = constants.StatusTodo
	}
	r.Priority = constants.NormalizePriority(r.Priority)
}

func (r *MarketingTaskRequest) ToModel() marketingModel.MarketingTaskModel {
	return marketingModel.MarketingTaskModel{
		MarketingTitle:        r.Title,
		MarketingDescription:  r.Description,
		MarketingCourseName:   r.CourseName,
		MarketingBatchNo:      r.BatchNo,
		MarketingScheduledFor: r.ScheduledFor,
		MarketingDueDate:      r.DueDate,
		MarketingStatus:       r.Status,
		MarketingPriority:     r.Priority,
		MarketingAssignedToID: r.AssignedToID,
		MarketingReportedToID: r.ReportedToID,
	}
}

func (r *MarketingTaskRequest) ApplyTo(m *marketingModel.MarketingTaskModel) {
	m.MarketingTitle = r.Title
	m.MarketingDescription = r.Description
	m.MarketingCourseName = r.CourseName
	m.MarketingBatchNo = r.BatchNo
	m.MarketingScheduledFor = r.ScheduledFor
	m.MarketingDueDate = r.DueDate
	m.MarketingStatus = r.Status
	m.MarketingPriority = r.Priority
	m.MarketingAssignedToID = r.AssignedToID
	m.MarketingReportedToID = r.ReportedToID
}

func ToMirrorRecord(m marketingModel.MarketingTaskModel) mirror.Record {
	return mirror.Record{
		SourceID:     m.MarketingID,
		Name:         m.MarketingTitle,
		Description:  m.MarketingDescription,
		CourseName:   m.MarketingCourseName,
		BatchNo:      strconv.Itoa(m.MarketingBatchNo),
		Status:       m.MarketingStatus,
		Priority:     m.MarketingPriority,
		AssignedToID: m.MarketingAssignedToID,
		ReportedToID: m.MarketingReportedToID,
		StartDate:    m.MarketingScheduledFor,
		DueDate:      m.MarketingDueDate,
	}
}

type MarketingTaskResponse struct {
	marketingModel.MarketingTaskModel
	AssignedTo *userModel.UserSummary `json:"assigned_to,omitempty"`
	ReportedTo *userModel.UserSummary `json:"reported_to,omitempty"`
}

func FromMarketingTaskModel(m marketingModel.MarketingTaskModel) MarketingTaskResponse {
	return MarketingTaskResponse{
		MarketingTaskModel: m,
		AssignedTo:         m.AssignedTo.Summary(),
		ReportedTo:         m.ReportedTo.Summary(),
	}
}

func FromMarketingTaskModels(ms []marketingModel.MarketingTaskModel) []MarketingTaskResponse {
	out := make([]MarketingTaskResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMarketingTaskModel(m))
	}
	return out
}
