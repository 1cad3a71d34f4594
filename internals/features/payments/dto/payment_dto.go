// internals/features/payments/dto/payment_dto.go
package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	"github.com/maruf-pfc/opsboard-sub000/internals/features/mirror"
	paymentModel "github.com/maruf-pfc/opsboard-sub000/internals/features/payments/model"
	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
)

type PaymentRequest struct {
	Title        string     `json:"title" validate:"required,max=160"`
	Description  *string    `json:"description" validate:"omitempty"`
	CourseName   string     `json:"course_name" validate:"required,max=80"`
	BatchNo      int        `json:"batch_no" validate:"required,min=1"`
	Amount       int64      `json:"amount" validate:"required,min=1"`
	Currency     string     `json:"currency" validate:"omitempty,len=3"`
	DueDate      *time.Time `json:"due_date" validate:"omitempty"`
	Status       string     `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS IN_REVIEW COMPLETED BLOCKED"`
	Priority     string     `json:"priority" validate:"omitempty"`
	AssignedToID *uuid.UUID `json:"assigned_to_id" validate:"omitempty"`
	ReportedToID *uuid.UUID `json:"reported_to_id" validate:"omitempty"`
}

func (r *PaymentRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.Description = helper.TrimPtr(r.Description)
	if r.Currency == "" {
		r.Currency = "IDR"
	}
	r.Currency = strings.ToUpper(r.Currency)
	if r.Status == "" {
		r.Status = constants.StatusTodo
	}
	r.Priority = constants.NormalizePriority(r.Priority)
}

func (r *PaymentRequest) ToModel() paymentModel.PaymentModel {
	return paymentModel.PaymentModel{
		PaymentTitle:        r.Title,
		PaymentDescription:  r.Description,
		PaymentCourseName:   r.CourseName,
		PaymentBatchNo:      r.BatchNo,
		PaymentAmount:       r.Amount,
		PaymentCurrency:     r.Currency,
		PaymentDueDate:      r.DueDate,
		PaymentStatus:       r.Status,
		PaymentPriority:     r.Priority,
		PaymentAssignedToID: r.AssignedToID,
		PaymentReportedToID: r.ReportedToID,
	}
}

func (r *PaymentRequest) ApplyTo(m *paymentModel.PaymentModel) {
	m.PaymentTitle = r.Title
	m.PaymentDescription = r.Description
	m.PaymentCourseName = r.CourseName
	m.PaymentBatchNo = r.BatchNo
	m.PaymentAmount = r.Amount
	m.PaymentCurrency = r.Currency
	m.PaymentDueDate = r.DueDate
	m.PaymentStatus = r.Status
	m.PaymentPriority = r.Priority
	m.PaymentAssignedToID = r.AssignedToID
	m.PaymentReportedToID = r.ReportedToID
}

func ToMirrorRecord(m paymentModel.PaymentModel) mirror.Record {
	return mirror.Record{
		SourceID:     m.PaymentID,
		Name:         m.PaymentTitle,
		Description:  m.PaymentDescription,
		CourseName:   m.PaymentCourseName,
		BatchNo:      strconv.Itoa(m.PaymentBatchNo),
		Status:       m.PaymentStatus,
		Priority:     m.PaymentPriority,
		AssignedToID: m.PaymentAssignedToID,
		ReportedToID: m.PaymentReportedToID,
		DueDate:      m.PaymentDueDate,
	}
}

type PaymentResponse struct {
	paymentModel.PaymentModel
	AssignedTo *userModel.UserSummary `json:"assigned_to,omitempty"`
	ReportedTo *userModel.UserSummary `json:"reported_to,omitempty"`
}

func FromPaymentModel(m paymentModel.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentModel: m,
		AssignedTo:   m.AssignedTo.Summary(),
		ReportedTo:   m.ReportedTo.Summary(),
	}
}

func FromPaymentModels(ms []paymentModel.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromPaymentModel(m))
	}
	return out
}
