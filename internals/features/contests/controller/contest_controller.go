// internals/features/contests/controller/contest_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	contestDTO "github.com/maruf-pfc/opsboard-sub000/internals/features/contests/dto"
	contestModel "github.com/maruf-pfc/opsboard-sub000/internals/features/contests/model"
	"github.com/maruf-pfc/opsboard-sub000/internals/features/mirror"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
)

var contestMirrorSpec = mirror.Spec{Kind: constants.KindContests}

type ContestController struct {
	DB    *gorm.DB
	Cache *cache.Cache
}

// GET /programming-contests
func (h *ContestController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&contestModel.ContestModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("contest_status = ?", status)
	}
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		q = q.Where("contest_course_name = ?", course)
	}
	if batch := strings.TrimSpace(c.Query("batch")); batch != "" {
		q = q.Where("contest_batch_no = ?", batch)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list contests")
	}

	var rows []contestModel.ContestModel
	if err := q.
		Preload("AssignedTo").Preload("ReportedTo").
		Order("contest_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list contests")
	}

	return helper.JsonList(c, "", contestDTO.FromContestModels(rows), helper.BuildPagination(total, paging))
}

// GET /programming-contests/:id
func (h *ContestController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m contestModel.ContestModel
	if err := h.DB.
		Preload("AssignedTo").Preload("ReportedTo").
		First(&m, "contest_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Contest not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch contest")
	}
	return helper.JsonOK(c, "", contestDTO.FromContestModel(m))
}

// POST /programming-contests
func (h *ContestController) Create(c *fiber.Ctx) error {
	var req contestDTO.ContestRequest
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
		if _, err := sync.Create(contestMirrorSpec, contestDTO.ToMirrorRecord(m)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonCreated(c, "Contest created", contestDTO.FromContestModel(m))
}

// PUT /programming-contests/:id
func (h *ContestController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req contestDTO.ContestRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m contestModel.ContestModel
	if err := h.DB.First(&m, "contest_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Contest not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch contest")
	}

	req.ApplyTo(&m)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		if _, err := sync.Update(contestMirrorSpec, contestDTO.ToMirrorRecord(m)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonUpdated(c, "Contest updated", contestDTO.FromContestModel(m))
}

// DELETE /programming-contests/:id
func (h *ContestController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m contestModel.ContestModel
	if err := h.DB.First(&m, "contest_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Contest not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch contest")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete contest")
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		return sync.Delete(contestMirrorSpec, contestDTO.ToMirrorRecord(m))
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonDeleted(c, "Contest deleted", fiber.Map{"contest_id": id})
}
