// internals/features/tasks/controller/task_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	taskDTO "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/dto"
	taskModel "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
)

type TaskController struct {
	DB    *gorm.DB
	Cache *cache.Cache
}

// GET /tasks
func (h *TaskController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&taskModel.TaskModel{})
	if kind := strings.TrimSpace(c.Query("type")); kind != "" {
		q = q.Where("task_type = ?", kind)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("task_status = ?", status)
	}
	if priority := strings.TrimSpace(c.Query("priority")); priority != "" {
		q = q.Where("task_priority = ?", priority)
	}
	if assignee := strings.TrimSpace(c.Query("assigned_to")); assignee != "" {
		id, err := uuid.Parse(assignee)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid assigned_to")
		}
		q = q.Where("task_assigned_to_id = ?", id)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("task_title ILIKE ?", "%"+helper.EscapeLike(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list tasks")
	}

	var rows []taskModel.TaskModel
	if err := q.
		Preload("AssignedTo").Preload("ReportedTo").
		Order("task_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list tasks")
	}

	return helper.JsonList(c, "", taskDTO.FromTaskModels(rows), helper.BuildPagination(total, paging))
}

// GET /tasks/board
// Grouped swimlane view of every card, served from Redis when warm.
func (h *TaskController) Board(c *fiber.Ctx) error {
	var cols []taskDTO.BoardColumn
	if h.Cache.GetJSON(c.UserContext(), cache.BoardKey, &cols) {
		return helper.JsonOK(c, "", cols)
	}

	var rows []taskModel.TaskModel
	if err := h.DB.
		Preload("AssignedTo").Preload("ReportedTo").
		Order("task_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build board")
	}

	cols = taskDTO.GroupBoard(rows)
	h.Cache.SetJSON(c.UserContext(), cache.BoardKey, cols)
	return helper.JsonOK(c, "", cols)
}

// GET /tasks/:id
func (h *TaskController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m taskModel.TaskModel
	if err := h.DB.
		Preload("AssignedTo").Preload("ReportedTo").
		First(&m, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Task not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch task")
	}
	return helper.JsonOK(c, "", taskDTO.FromTaskModel(m))
}

// POST /tasks
func (h *TaskController) Create(c *fiber.Ctx) error {
	var req taskDTO.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonCreated(c, "Task created", taskDTO.FromTaskModel(m))
}

// PUT /tasks/:id
func (h *TaskController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req taskDTO.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m taskModel.TaskModel
	if err := h.DB.First(&m, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Task not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch task")
	}

	req.ApplyTo(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonUpdated(c, "Task updated", taskDTO.FromTaskModel(m))
}

// PATCH /tasks/:id/status
// Drag-and-drop column moves only touch the status field.
func (h *TaskController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=TODO IN_PROGRESS IN_REVIEW COMPLETED BLOCKED"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m taskModel.TaskModel
	if err := h.DB.First(&m, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Task not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch task")
	}

	if err := h.DB.Model(&m).Update("task_status", req.Status).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update status")
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonUpdated(c, "Status updated", taskDTO.FromTaskModel(m))
}

// DELETE /tasks/:id
func (h *TaskController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m taskModel.TaskModel
	if err := h.DB.First(&m, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Task not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch task")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_task_id = ?", m.TaskID).
			Delete(&taskModel.TaskCommentModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete comments")
		}
		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete task")
		}
		return nil
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonDeleted(c, "Task deleted", fiber.Map{"task_id": id})
}
