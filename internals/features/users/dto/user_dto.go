// internals/features/users/dto/user_dto.go
package dto

import (
	"strings"

	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
)

type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = helper.TrimPtr(r.Phone)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// CreateUserRequest is the admin-facing create shape; unlike register it
// may set the role up front.
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin manager trainer member"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
}

func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = helper.TrimPtr(r.Phone)
}

// UpdateUserRequest is the admin-facing shape; role and activation are
// only honored there, not on the self-service endpoint.
type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin manager trainer member"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`

	// ProfileImage accepts either a data URI (uploaded and replaced by a
	// hosted URL), a plain URL (stored as-is), or null (cleared).
	ProfileImage *string `json:"profile_image" validate:"omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = helper.TrimPtr(r.Phone)
	r.ProfileImage = helper.TrimPtr(r.ProfileImage)
}

type UpdateProfileRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	ProfileImage *string `json:"profile_image" validate:"omitempty"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = helper.TrimPtr(r.Phone)
	r.ProfileImage = helper.TrimPtr(r.ProfileImage)
}

type AuthResponse struct {
	AccessToken string              `json:"access_token"`
	User        userModel.UserModel `json:"user"`
}
