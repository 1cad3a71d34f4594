// internals/features/contests/dto/contest_dto.go
package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	contestModel "github.com/maruf-pfc/opsboard-sub000/internals/features/contests/model"
	"github.com/maruf-pfc/opsboard-sub000/internals/features/mirror"
	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
)

type ContestRequest struct {
	ContestName  string     `json:"contest_name" validate:"required,max=160"`
	Description  *string    `json:"description" validate:"omitempty"`
	CourseName   string     `json:"course_name" validate:"required,max=80"`
	BatchNo      int        `json:"batch_no" validate:"required,min=1"`
	StartDate    *time.Time `json:"start_date" validate:"omitempty"`
	DueDate      *time.Time `json:"due_date" validate:"omitempty"`
	Status       string     `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS IN_REVIEW COMPLETED BLOCKED"`
	Priority     string     `json:"priority" validate:"omitempty"`
	AssignedToID *uuid.UUID `json:"assigned_to_id" validate:"omitempty"`
	ReportedToID *uuid.UUID `json:"reported_to_id" validate:"omitempty"`
}

func (r *ContestRequest) Normalize() {
	r.ContestName = strings.TrimSpace(r.ContestName)
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.Description = helper.TrimPtr(r.Description)
	if r.Status == "" {
		r.Status = constants.StatusTodo
	}
	r.Priority = constants.NormalizePriority(r.Priority)
}

func (r *ContestRequest) ToModel() contestModel.ContestModel {
	return contestModel.ContestModel{
		ContestName:         r.ContestName,
		ContestDescription:  r.Description,
		ContestCourseName:   r.CourseName,
		ContestBatchNo:      r.BatchNo,
		ContestStartDate:    r.StartDate,
		ContestDueDate:      r.DueDate,
		ContestStatus:       r.Status,
		ContestPriority:     r.Priority,
		ContestAssignedToID: r.AssignedToID,
		ContestReportedToID: r.ReportedToID,
	}
}

func (r *ContestRequest) ApplyTo(m *contestModel.ContestModel) {
	m.ContestName = r.ContestName
	m.ContestDescription = r.Description
	m.ContestCourseName = r.CourseName
	m.ContestBatchNo = r.BatchNo
	m.ContestStartDate = r.StartDate
	m.ContestDueDate = r.DueDate
	m.ContestStatus = r.Status
	m.ContestPriority = r.Priority
	m.ContestAssignedToID = r.AssignedToID
	m.ContestReportedToID = r.ReportedToID
}

func ToMirrorRecord(m contestModel.ContestModel) mirror.Record {
	name := m.ContestName
	return mirror.Record{
		SourceID:     m.ContestID,
		Name:         m.ContestName,
		Description:  m.ContestDescription,
		CourseName:   m.ContestCourseName,
		BatchNo:      strconv.Itoa(m.ContestBatchNo),
		Status:       m.ContestStatus,
		Priority:     m.ContestPriority,
		AssignedToID: m.ContestAssignedToID,
		ReportedToID: m.ContestReportedToID,
		StartDate:    m.ContestStartDate,
		DueDate:      m.ContestDueDate,
		ContestName:  &name,
	}
}

type ContestResponse struct {
	contestModel.ContestModel
	AssignedTo *userModel.UserSummary `json:"assigned_to,omitempty"`
	ReportedTo *userModel.UserSummary `json:"reported_to,omitempty"`
}

func FromContestModel(m contestModel.ContestModel) ContestResponse {
	return ContestResponse{
		ContestModel: m,
		AssignedTo:   m.AssignedTo.Summary(),
		ReportedTo:   m.ReportedTo.Summary(),
	}
}

func FromContestModels(ms []contestModel.ContestModel) []ContestResponse {
	out := make([]ContestResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromContestModel(m))
	}
	return out
}
