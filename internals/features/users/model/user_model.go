// internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table
type UserModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string         `gorm:"size:100;not null" json:"name"`
	Email           string         `gorm:"size:255;unique;not null" json:"email"`
	Password        string         `gorm:"not null" json:"-"`
	GoogleID        *string        `gorm:"size:255;unique" json:"-"`
	Role            string         `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	Phone           *string        `gorm:"size:30" json:"phone,omitempty"`
	ProfileImageURL *string        `gorm:"type:text" json:"profile_image_url,omitempty"`
	IsActive        bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

// UserSummary is the embedded shape used when expanding assignee/reporter
// references on reads.
type UserSummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
}

func (u *UserModel) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImageURL,
	}
}
