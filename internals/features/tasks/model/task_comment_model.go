// internals/features/tasks/model/task_comment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
)

type TaskCommentModel struct {
	CommentID       uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:comment_id" json:"comment_id"`
	CommentTaskID   uuid.UUID            `gorm:"type:uuid;not null;index;column:comment_task_id" json:"comment_task_id"`
	CommentAuthorID uuid.UUID            `gorm:"type:uuid;not null;column:comment_author_id" json:"comment_author_id"`
	Author          *userModel.UserModel `gorm:"foreignKey:CommentAuthorID;references:ID" json:"-"`
	CommentBody     string               `gorm:"type:text;not null;column:comment_body" json:"comment_body"`
	CommentCreatedAt time.Time           `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:comment_created_at" json:"comment_created_at"`
	CommentUpdatedAt time.Time           `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:comment_updated_at" json:"comment_updated_at"`
	CommentDeletedAt gorm.DeletedAt      `gorm:"column:comment_deleted_at;index" json:"-"`
}

func (TaskCommentModel) TableName() string { return "task_comments" }
