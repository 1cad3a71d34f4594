// internals/features/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
)

// PaymentModel is one payout/collection item (trainer honorarium, judge
// fee, and similar) tracked on the board.
type PaymentModel struct {
	PaymentID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payment_id" json:"payment_id"`
	PaymentTitle       string    `gorm:"type:varchar(160);not null;column:payment_title" json:"payment_title"`
	PaymentDescription *string   `gorm:"type:text;column:payment_description" json:"payment_description,omitempty"`
	PaymentCourseName  string    `gorm:"type:varchar(80);not null;column:payment_course_name;index" json:"payment_course_name"`
	PaymentBatchNo     int       `gorm:"not null;column:payment_batch_no;index" json:"payment_batch_no"`

	PaymentAmount   int64  `gorm:"not null;default:0;column:payment_amount" json:"payment_amount"`
	PaymentCurrency string `gorm:"type:varchar(8);not null;default:'IDR';column:payment_currency" json:"payment_currency"`

	// gateway fields, set once a checkout link has been minted
	PaymentOrderID *string `gorm:"type:varchar(64);unique;column:payment_order_id" json:"payment_order_id,omitempty"`
	PaymentLinkURL *string `gorm:"type:text;column:payment_link_url" json:"payment_link_url,omitempty"`

	PaymentDueDate *time.Time `gorm:"column:payment_due_date" json:"payment_due_date,omitempty"`

	PaymentStatus   string `gorm:"type:varchar(20);not null;default:'TODO';column:payment_status" json:"payment_status"`
	PaymentPriority string `gorm:"type:varchar(10);not null;default:'NORMAL';column:payment_priority" json:"payment_priority"`

	PaymentAssignedToID *uuid.UUID           `gorm:"type:uuid;column:payment_assigned_to_id" json:"payment_assigned_to_id,omitempty"`
	AssignedTo          *userModel.UserModel `gorm:"foreignKey:PaymentAssignedToID;references:ID" json:"-"`
	PaymentReportedToID *uuid.UUID           `gorm:"type:uuid;column:payment_reported_to_id" json:"payment_reported_to_id,omitempty"`
	ReportedTo          *userModel.UserModel `gorm:"foreignKey:PaymentReportedToID;references:ID" json:"-"`

	PaymentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:payment_created_at" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:payment_updated_at" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (PaymentModel) TableName() string { return "payments" }
