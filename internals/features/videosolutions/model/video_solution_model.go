// internals/features/videosolutions/model/video_solution_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
)

// VideoSolutionModel tracks recording a solution video for one contest.
type VideoSolutionModel struct {
	VideoID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:video_id" json:"video_id"`
	VideoContestName   string    `gorm:"type:varchar(160);not null;column:video_contest_name" json:"video_contest_name"`
	VideoDescription   *string   `gorm:"type:text;column:video_description" json:"video_description,omitempty"`
	VideoCourseName    string    `gorm:"type:varchar(80);not null;column:video_course_name;index" json:"video_course_name"`
	VideoBatchNo       int       `gorm:"not null;column:video_batch_no;index" json:"video_batch_no"`
	VideoEstimatedTime *string   `gorm:"type:varchar(40);column:video_estimated_time" json:"video_estimated_time,omitempty"`
	VideoURL           *string   `gorm:"type:text;column:video_url" json:"video_url,omitempty"`

	VideoStartDate *time.Time `gorm:"column:video_start_date" json:"video_start_date,omitempty"`
	VideoDueDate   *time.Time `gorm:"column:video_due_date" json:"video_due_date,omitempty"`

	VideoStatus   string `gorm:"type:varchar(20);not null;default:'TODO';column:video_status" json:"video_status"`
	VideoPriority string `gorm:"type:varchar(10);not null;default:'NORMAL';column:video_priority" json:"video_priority"`

	VideoAssignedToID *uuid.UUID           `gorm:"type:uuid;column:video_assigned_to_id" json:"video_assigned_to_id,omitempty"`
	AssignedTo        *userModel.UserModel `gorm:"foreignKey:VideoAssignedToID;references:ID" json:"-"`
	VideoReportedToID *uuid.UUID           `gorm:"type:uuid;column:video_reported_to_id" json:"video_reported_to_id,omitempty"`
	ReportedTo        *userModel.UserModel `gorm:"foreignKey:VideoReportedToID;references:ID" json:"-"`

	VideoCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:video_created_at" json:"video_created_at"`
	VideoUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:video_updated_at" json:"video_updated_at"`
	VideoDeletedAt gorm.DeletedAt `gorm:"column:video_deleted_at;index" json:"-"`
}

func (VideoSolutionModel) TableName() string { return "contest_video_solutions" }
