// internals/features/classes/dto/class_dto.go
package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	classModel "github.com/maruf-pfc/opsboard-sub000/internals/features/classes/model"
	"github.com/maruf-pfc/opsboard-sub000/internals/features/mirror"
	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
)

/* =========================================================
   Requests
========================================================= */

type ClassRequest struct {
	ClassTitle   string     `json:"class_title" validate:"required,max=160"`
	Description  *string    `json:"description" validate:"omitempty"`
	CourseName   string     `json:"course_name" validate:"required,max=80"`
	BatchNo      int        `json:"batch_no" validate:"required,min=1"`
	Schedule     *time.Time `json:"schedule" validate:"omitempty"`
	Status       string     `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS IN_REVIEW COMPLETED BLOCKED"`
	Priority     string     `json:"priority" validate:"omitempty"`
	AssignedToID *uuid.UUID `json:"assigned_to_id" validate:"omitempty"`
	ReportedToID *uuid.UUID `json:"reported_to_id" validate:"omitempty"`
}

func (r *ClassRequest) Normalize() {
	r.ClassTitle = strings.TrimSpace(r.ClassTitle)
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.Description = helper.TrimPtr(r.Description)
	if r.Status == "" {
		r.Status = constants.StatusTodo
	}
	r.Priority = constants.NormalizePriority(r.Priority)
}

func (r *ClassRequest) ToModel() classModel.ClassModel {
	return classModel.ClassModel{
		ClassTitle:        r.ClassTitle,
		ClassDescription:  r.Description,
		ClassCourseName:   r.CourseName,
		ClassBatchNo:      r.BatchNo,
		ClassSchedule:     r.Schedule,
		ClassStatus:       r.Status,
		ClassPriority:     r.Priority,
		ClassAssignedToID: r.AssignedToID,
		ClassReportedToID: r.ReportedToID,
	}
}

func (r *ClassRequest) ApplyTo(m *classModel.ClassModel) {
	m.ClassTitle = r.ClassTitle
	m.ClassDescription = r.Description
	m.ClassCourseName = r.CourseName
	m.ClassBatchNo = r.BatchNo
	m.ClassSchedule = r.Schedule
	m.ClassStatus = r.Status
	m.ClassPriority = r.Priority
	m.ClassAssignedToID = r.AssignedToID
	m.ClassReportedToID = r.ReportedToID
}

/* =========================================================
   Mirror projection
========================================================= */

// ToMirrorRecord maps a class onto the board. The class schedule doubles as
// both start and due date, matching how the board always displayed classes.
func ToMirrorRecord(m classModel.ClassModel) mirror.Record {
	return mirror.Record{
		SourceID:     m.ClassID,
		Name:         m.ClassTitle,
		Description:  m.ClassDescription,
		CourseName:   m.ClassCourseName,
		BatchNo:      strconv.Itoa(m.ClassBatchNo),
		Status:       m.ClassStatus,
		Priority:     m.ClassPriority,
		AssignedToID: m.ClassAssignedToID,
		ReportedToID: m.ClassReportedToID,
		StartDate:    m.ClassSchedule,
		DueDate:      m.ClassSchedule,
	}
}

/* =========================================================
   Responses
========================================================= */

type ClassResponse struct {
	classModel.ClassModel
	AssignedTo *userModel.UserSummary `json:"assigned_to,omitempty"`
	ReportedTo *userModel.UserSummary `json:"reported_to,omitempty"`
}

func FromClassModel(m classModel.ClassModel) ClassResponse {
	return ClassResponse{
		ClassModel: m,
		AssignedTo: m.AssignedTo.Summary(),
		ReportedTo: m.ReportedTo.Summary(),
	}
}

func FromClassModels(ms []classModel.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromClassModel(m))
	}
	return out
}
