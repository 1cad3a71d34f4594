// internals/features/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	classDTO "github.com/maruf-pfc/opsboard-sub000/internals/features/classes/dto"
	classModel "github.com/maruf-pfc/opsboard-sub000/internals/features/classes/model"
	"github.com/maruf-pfc/opsboard-sub000/internals/features/mirror"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
)

var classMirrorSpec = mirror.Spec{Kind: constants.KindClasses}

type ClassController struct {
	DB    *gorm.DB
	Cache *cache.Cache
}

// GET /classes
func (h *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&classModel.ClassModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("class_status = ?", status)
	}
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		q = q.Where("class_course_name = ?", course)
	}
	if batch := strings.TrimSpace(c.Query("batch")); batch != "" {
		q = q.Where("class_batch_no = ?", batch)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list classes")
	}

	var rows []classModel.ClassModel
	if err := q.
		Preload("AssignedTo").Preload("ReportedTo").
		Order("class_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list classes")
	}

	return helper.JsonList(c, "", classDTO.FromClassModels(rows), helper.BuildPagination(total, paging))
}

// GET /classes/:id
func (h *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m classModel.ClassModel
	if err := h.DB.
		Preload("AssignedTo").Preload("ReportedTo").
		First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}
	return helper.JsonOK(c, "", classDTO.FromClassModel(m))
}

// POST /classes
func (h *ClassController) Create(c *fiber.Ctx) error {
	var req classDTO.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	// class row and board card commit together or not at all
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		if _, err := sync.Create(classMirrorSpec, classDTO.ToMirrorRecord(m)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonCreated(c, "Class created", classDTO.FromClassModel(m))
}

// PUT /classes/:id
func (h *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req classDTO.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m classModel.ClassModel
	if err := h.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}

	req.ApplyTo(&m)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		// a board miss is a silent no-op; the class update still succeeds
		if _, err := sync.Update(classMirrorSpec, classDTO.ToMirrorRecord(m)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonUpdated(c, "Class updated", classDTO.FromClassModel(m))
}

// DELETE /classes/:id
func (h *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m classModel.ClassModel
	if err := h.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete class")
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		// located with the pre-deletion field values
		return sync.Delete(classMirrorSpec, classDTO.ToMirrorRecord(m))
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonDeleted(c, "Class deleted", fiber.Map{"class_id": id})
}
