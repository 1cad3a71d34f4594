// internals/features/videosolutions/controller/video_solution_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	"github.com/maruf-pfc/opsboard-sub000/internals/features/mirror"
	videoDTO "github.com/maruf-pfc/opsboard-sub000/internals/features/videosolutions/dto"
	videoModel "github.com/maruf-pfc/opsboard-sub000/internals/features/videosolutions/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
)

// The video-solution card keeps the contest name and estimated recording
// time on the board, prefixed so trainers can tell it from the contest card.
var videoMirrorSpec = mirror.Spec{
	Kind:        constants.KindVideoSolutions,
	TitlePrefix: "Video Solution: ",
}

type VideoSolutionController struct {
	DB    *gorm.DB
	Cache *cache.Cache
}

// GET /contest-video-solutions
func (h *VideoSolutionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&videoModel.VideoSolutionModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("video_status = ?", status)
	}
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		q = q.Where("video_course_name = ?", course)
	}
	if batch := strings.TrimSpace(c.Query("batch")); batch != "" {
		q = q.Where("video_batch_no = ?", batch)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list video solutions")
	}

	var rows []videoModel.VideoSolutionModel
	if err := q.
		Preload("AssignedTo").Preload("ReportedTo").
		Order("video_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list video solutions")
	}

	return helper.JsonList(c, "", videoDTO.FromVideoSolutionModels(rows), helper.BuildPagination(total, paging))
}

// GET /contest-video-solutions/:id
func (h *VideoSolutionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m videoModel.VideoSolutionModel
	if err := h.DB.
		Preload("AssignedTo").Preload("ReportedTo").
		First(&m, "video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Video solution not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch video solution")
	}
	return helper.JsonOK(c, "", videoDTO.FromVideoSolutionModel(m))
}

// POST /contest-video-solutions
func (h *VideoSolutionController) Create(c *fiber.Ctx) error {
	var req videoDTO.VideoSolutionRequest
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
		if _, err := sync.Create(videoMirrorSpec, videoDTO.ToMirrorRecord(m)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonCreated(c, "Video solution created", videoDTO.FromVideoSolutionModel(m))
}

// PUT /contest-video-solutions/:id
func (h *VideoSolutionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req videoDTO.VideoSolutionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m videoModel.VideoSolutionModel
	if err := h.DB.First(&m, "video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Video solution not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch video solution")
	}

	req.ApplyTo(&m)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		if _, err := sync.Update(videoMirrorSpec, videoDTO.ToMirrorRecord(m)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonUpdated(c, "Video solution updated", videoDTO.FromVideoSolutionModel(m))
}

// DELETE /contest-video-solutions/:id
func (h *VideoSolutionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m videoModel.VideoSolutionModel
	if err := h.DB.First(&m, "video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Video solution not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch video solution")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete video solution")
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		return sync.Delete(videoMirrorSpec, videoDTO.ToMirrorRecord(m))
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonDeleted(c, "Video solution deleted", fiber.Map{"video_id": id})
}
