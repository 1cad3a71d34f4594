// internals/features/marketing/model/marketing_task_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
)

// MarketingTaskModel is one email-marketing campaign item.
type MarketingTaskModel struct {
	MarketingID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:marketing_id" json:"marketing_id"`
	MarketingTitle        string     `gorm:"type:varchar(160);not null;column:marketing_title" json:"marketing_title"`
	MarketingDescription  *string    `gorm:"type:text;column:marketing_description" json:"marketing_description,omitempty"`
	MarketingCourseName   string     `gorm:"type:varchar(80);not null;column:marketing_course_name;index" json:"marketing_course_name"`
	MarketingBatchNo      int        `gorm:"not null;column:marketing_batch_no;index" json:"marketing_batch_no"`
	MarketingScheduledFor *time.Time `gorm:"column:marketing_scheduled_for" json:"marketing_scheduled_for,omitempty"`
	MarketingDueDate      *time.Time `gorm:"column:marketing_due_date" json:"marketing_due_date,omitempty"`

	MarketingStatus   string `gorm:"type:varchar(20);not null;default:'TODO';column:marketing_status" json:"marketing_status"`
	MarketingPriority string `gorm:"type:varchar(10);not null;default:'NORMAL';column:marketing_priority" json:"marketing_priority"`

	MarketingAssignedToID *uuid.UUID           `gorm:"type:uuid;column:marketing_assigned_to_id" json:"marketing_assigned_to_id,omitempty"`
	AssignedTo            *userModel.UserModel `gorm:"foreignKey:MarketingAssignedToID;references:ID" json:"-"`
	MarketingReportedToID *uuid.UUID           `gorm:"type:uuid;column:marketing_reported_to_id" json:"marketing_reported_to_id,omitempty"`
	ReportedTo            *userModel.UserModel `gorm:"foreignKey:MarketingReportedToID;references:ID" json:"-"`

	MarketingCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:marketing_created_at" json:"marketing_created_at"`
	MarketingUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:marketing_updated_at" json:"marketing_updated_at"`
	MarketingDeletedAt gorm.DeletedAt `gorm:"column:marketing_deleted_at;index" json:"-"`
}

func (MarketingTaskModel) TableName() string { return "marketing_tasks" }
