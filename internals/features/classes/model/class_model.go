// internals/features/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
)

type ClassModel struct {
	ClassID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`
	ClassTitle       string     `gorm:"type:varchar(160);not null;column:class_title" json:"class_title"`
	ClassDescription *string    `gorm:"type:text;column:class_description" json:"class_description,omitempty"`
	ClassCourseName  string     `gorm:"type:varchar(80);not null;column:class_course_name;index" json:"class_course_name"`
	ClassBatchNo     int        `gorm:"not null;column:class_batch_no;index" json:"class_batch_no"`
	ClassSchedule    *time.Time `gorm:"column:class_schedule" json:"class_schedule,omitempty"`

	ClassStatus   string `gorm:"type:varchar(20);not null;default:'TODO';column:class_status" json:"class_status"`
	ClassPriority string `gorm:"type:varchar(10);not null;default:'NORMAL';column:class_priority" json:"class_priority"`

	ClassAssignedToID *uuid.UUID           `gorm:"type:uuid;column:class_assigned_to_id" json:"class_assigned_to_id,omitempty"`
	AssignedTo        *userModel.UserModel `gorm:"foreignKey:ClassAssignedToID;references:ID" json:"-"`
	ClassReportedToID *uuid.UUID           `gorm:"type:uuid;column:class_reported_to_id" json:"class_reported_to_id,omitempty"`
	ReportedTo        *userModel.UserModel `gorm:"foreignKey:ClassReportedToID;references:ID" json:"-"`

	ClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }
