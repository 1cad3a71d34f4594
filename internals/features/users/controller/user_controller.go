// internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDTO "github.com/maruf-pfc/opsboard-sub000/internals/features/users/dto"
	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
	helperAuth "github.com/maruf-pfc/opsboard-sub000/internals/helpers/auth"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/oss"
)

type UserController struct {
	DB       *gorm.DB
	Uploader *oss.Uploader // nil when object storage is not configured
}

// GET /users
func (h *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&userModel.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		probe := "%" + helper.EscapeLike(search) + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", probe, probe)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list users")
	}

	var rows []userModel.UserModel
	if err := q.
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list users")
	}
	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging))
}

// GET /users/:id
func (h *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.JsonOK(c, "", user)
}

// POST /users  (admin)
func (h *UserController) Create(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Phone:    req.Phone,
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if err := h.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}
	return helper.JsonCreated(c, "User created", user)
}

// PUT /users/:id  (admin)
func (h *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if err := h.applyProfileImage(&user, req.ProfileImage); err != nil {
		return err
	}

	if err := h.DB.Save(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusBadRequest, "Email already in use")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonUpdated(c, "User updated", user)
}

// DELETE /users/:id  (admin)
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if me, err := helperAuth.GetUserID(c); err == nil && me == id {
		return fiber.NewError(fiber.StatusBadRequest, "You cannot delete your own account")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if err := h.DB.Delete(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": id})
}

// GET /users/me
func (h *UserController) Me(c *fiber.Ctx) error {
	id, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.JsonOK(c, "", user)
}

// PUT /users/me
func (h *UserController) UpdateMe(c *fiber.Ctx) error {
	id, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var req userDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	user.Name = req.Name
	user.Phone = req.Phone
	if err := h.applyProfileImage(&user, req.ProfileImage); err != nil {
		return err
	}

	if err := h.DB.Save(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated", user)
}

// applyProfileImage resolves the three accepted shapes of the
// profile_image field: data URI (upload, store hosted URL), plain URL
// (store as-is), empty string (clear).
func (h *UserController) applyProfileImage(user *userModel.UserModel, img *string) error {
	if img == nil {
		return nil
	}
	val := *img
	switch {
	case val == "":
		user.ProfileImageURL = nil
	case oss.IsDataURI(val):
		if h.Uploader == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Image hosting not configured")
		}
		url, err := h.Uploader.UploadDataURI(fmt.Sprintf("users/user_%s", user.ID), val)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Failed to process profile image: "+err.Error())
		}
		user.ProfileImageURL = &url
	default:
		user.ProfileImageURL = &val
	}
	return nil
}
