// internals/features/tasks/model/task_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
)

// TaskModel is one card on the unified board. Mirrored rows carry the
// originating record's kind in task_type and its id in task_source_id;
// hand-made cards use type "general" with a nil source.
type TaskModel struct {
	TaskID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:task_id" json:"task_id"`
	TaskType     string     `gorm:"type:varchar(40);not null;default:'general';column:task_type;index:idx_tasks_type_source" json:"task_type"`
	TaskSourceID *uuid.UUID `gorm:"type:uuid;column:task_source_id;index:idx_tasks_type_source" json:"task_source_id,omitempty"`

	TaskTitle       string `gorm:"type:varchar(240);not null;column:task_title" json:"task_title"`
	TaskDescription string `gorm:"type:text;not null;default:'';column:task_description" json:"task_description"`

	TaskStatus   string `gorm:"type:varchar(20);not null;default:'TODO';column:task_status;index" json:"task_status"`
	TaskPriority string `gorm:"type:varchar(10);not null;default:'NORMAL';column:task_priority" json:"task_priority"`

	TaskCourseName string `gorm:"type:varchar(80);not null;default:'';column:task_course_name" json:"task_course_name"`
	TaskBatchNo    string `gorm:"type:varchar(20);not null;default:'';column:task_batch_no" json:"task_batch_no"`

	// kind-specific extras
	TaskContestName   *string `gorm:"type:varchar(160);column:task_contest_name" json:"task_contest_name,omitempty"`
	TaskEstimatedTime *string `gorm:"type:varchar(40);column:task_estimated_time" json:"task_estimated_time,omitempty"`

	TaskAssignedToID *uuid.UUID           `gorm:"type:uuid;column:task_assigned_to_id" json:"task_assigned_to_id,omitempty"`
	AssignedTo       *userModel.UserModel `gorm:"foreignKey:TaskAssignedToID;references:ID" json:"-"`
	TaskReportedToID *uuid.UUID           `gorm:"type:uuid;column:task_reported_to_id" json:"task_reported_to_id,omitempty"`
	ReportedTo       *userModel.UserModel `gorm:"foreignKey:TaskReportedToID;references:ID" json:"-"`

	TaskStartDate *time.Time `gorm:"column:task_start_date" json:"task_start_date,omitempty"`
	TaskDueDate   *time.Time `gorm:"column:task_due_date" json:"task_due_date,omitempty"`

	TaskLabels pq.StringArray `gorm:"type:text[];column:task_labels" json:"task_labels,omitempty"`
	TaskMeta   datatypes.JSON `gorm:"column:task_meta" json:"task_meta,omitempty"`

	TaskCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:task_created_at" json:"task_created_at"`
	TaskUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:task_updated_at" json:"task_updated_at"`
	TaskDeletedAt gorm.DeletedAt `gorm:"column:task_deleted_at;index" json:"-"`
}

func (TaskModel) TableName() string { return "tasks" }
