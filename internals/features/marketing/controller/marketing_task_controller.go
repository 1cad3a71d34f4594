// internals/features/marketing/controller/marketing_task_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	marketingDTO "github.com/maruf-pfc/opsboard-sub000/internals/features/marketing/dto"
	marketingModel "github.com/maruf-pfc/opsboard-sub000/internals/features/marketing/model"
	"github.com/maruf-pfc/opsboard-sub000/internals/features/mirror"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
)

var marketingMirrorSpec = mirror.Spec{Kind: constants.KindMarketing}

type MarketingTaskController struct {
	DB    *gorm.DB
	Cache *cache.Cache
}

// GET /email-marketing
func (h *MarketingTaskController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&marketingModel.MarketingTaskModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("marketing_status = ?", status)
	}
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		q = q.Where("marketing_course_name = ?", course)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list marketing tasks")
	}

	var rows []marketingModel.MarketingTaskModel
	if err := q.
		Preload("AssignedTo").Preload("ReportedTo").
		Order("marketing_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list marketing tasks")
	}

	return helper.JsonList(c, "", marketingDTO.FromMarketingTaskModels(rows), helper.BuildPagination(total, paging))
}

// GET /email-marketing/:id
func (h *MarketingTaskController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m marketingModel.MarketingTaskModel
	if err := h.DB.
		Preload("AssignedTo").Preload("ReportedTo").
		First(&m, "marketing_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Marketing task not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch marketing task")
	}
	return helper.JsonOK(c, "", marketingDTO.FromMarketingTaskModel(m))
}

// POST /email-marketing
func (h *MarketingTaskController) Create(c *fiber.Ctx) error {
	var req marketingDTO.MarketingTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		if _, err := sync.Create(marketingMirrorSpec, marketingDTO.ToMirrorRecord(m)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonCreated(c, "Marketing task created", marketingDTO.FromMarketingTaskModel(m))
}

// PUT /email-marketing/:id
func (h *MarketingTaskController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req marketingDTO.MarketingTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m marketingModel.MarketingTaskModel
	if err := h.DB.First(&m, "marketing_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Marketing task not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch marketing task")
	}

	req.ApplyTo(&m)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		if _, err := sync.Update(marketingMirrorSpec, marketingDTO.ToMirrorRecord(m)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonUpdated(c, "Marketing task updated", marketingDTO.FromMarketingTaskModel(m))
}

// DELETE /email-marketing/:id
func (h *MarketingTaskController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m marketingModel.MarketingTaskModel
	if err := h.DB.First(&m, "marketing_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Marketing task not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch marketing task")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete marketing task")
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		return sync.Delete(marketingMirrorSpec, marketingDTO.ToMirrorRecord(m))
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonDeleted(c, "Marketing task deleted", fiber.Map{"marketing_id": id})
}
