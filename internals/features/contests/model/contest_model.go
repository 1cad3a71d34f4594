// internals/features/contests/model/contest_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
)

type ContestModel struct {
	ContestID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:contest_id" json:"contest_id"`
	ContestName        string     `gorm:"type:varchar(160);not null;column:contest_name" json:"contest_name"`
	ContestDescription *string    `gorm:"type:text;column:contest_description" json:"contest_description,omitempty"`
	ContestCourseName  string     `gorm:"type:varchar(80);not null;column:contest_course_name;index" json:"contest_course_name"`
	ContestBatchNo     int        `gorm:"not null;column:contest_batch_no;index" json:"contest_batch_no"`
	ContestStartDate   *time.Time `gorm:"column:contest_start_date" json:"contest_start_date,omitempty"`
	ContestDueDate     *time.Time `gorm:"column:contest_due_date" json:"contest_due_date,omitempty"`

	ContestStatus   string `gorm:"type:varchar(20);not null;default:'TODO';column:contest_status" json:"contest_status"`
	ContestPriority string `gorm:"type:varchar(10);not null;default:'NORMAL';column:contest_priority" json:"contest_priority"`

	ContestAssignedToID *uuid.UUID           `gorm:"type:uuid;column:contest_assigned_to_id" json:"contest_assigned_to_id,omitempty"`
	AssignedTo          *userModel.UserModel `gorm:"foreignKey:ContestAssignedToID;references:ID" json:"-"`
	ContestReportedToID *uuid.UUID           `gorm:"type:uuid;column:contest_reported_to_id" json:"contest_reported_to_id,omitempty"`
	ReportedTo          *userModel.UserModel `gorm:"foreignKey:ContestReportedToID;references:ID" json:"-"`

	ContestCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:contest_created_at" json:"contest_created_at"`
	ContestUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:contest_updated_at" json:"contest_updated_at"`
	ContestDeletedAt gorm.DeletedAt `gorm:"column:contest_deleted_at;index" json:"-"`
}

func (ContestModel) TableName() string { return "contests" }
