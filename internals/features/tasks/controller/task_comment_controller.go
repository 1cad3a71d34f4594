// internals/features/tasks/controller/task_comment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	taskDTO "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/dto"
	taskModel "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
	helperAuth "github.com/maruf-pfc/opsboard-sub000/internals/helpers/auth"
)

type TaskCommentController struct {
	DB *gorm.DB
}

func (h *TaskCommentController) taskID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid task id")
	}
	var count int64
	if err := h.DB.Model(&taskModel.TaskModel{}).
		Where("task_id = ?", id).Count(&count).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch task")
	}
	if count == 0 {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Task not found")
	}
	return id, nil
}

// GET /tasks/:id/comments
func (h *TaskCommentController) List(c *fiber.Ctx) error {
	taskID, err := h.taskID(c)
	if err != nil {
		return err
	}

	var rows []taskModel.TaskCommentModel
	if err := h.DB.
		Preload("Author").
		Where("comment_task_id = ?", taskID).
		Order("comment_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list comments")
	}
	return helper.JsonOK(c, "", taskDTO.FromTaskCommentModels(rows))
}

// POST /tasks/:id/comments
func (h *TaskCommentController) Create(c *fiber.Ctx) error {
	taskID, err := h.taskID(c)
	if err != nil {
		return err
	}
	authorID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var req taskDTO.TaskCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := taskModel.TaskCommentModel{
		CommentTaskID:   taskID,
		CommentAuthorID: authorID,
		CommentBody:     req.Body,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonCreated(c, "Comment added", taskDTO.FromTaskCommentModel(m))
}

// PUT /tasks/:id/comments/:commentId
// Only the author (or an admin) may edit.
func (h *TaskCommentController) Update(c *fiber.Ctx) error {
	taskID, err := h.taskID(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(strings.TrimSpace(c.Params("commentId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid comment id")
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var req taskDTO.TaskCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m taskModel.TaskCommentModel
	if err := h.DB.
		First(&m, "comment_id = ? AND comment_task_id = ?", commentID, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Comment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch comment")
	}
	if m.CommentAuthorID != userID && helperAuth.GetRole(c) != constants.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "You may only edit your own comments")
	}

	m.CommentBody = req.Body
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update comment")
	}
	return helper.JsonUpdated(c, "Comment updated", taskDTO.FromTaskCommentModel(m))
}

// DELETE /tasks/:id/comments/:commentId
func (h *TaskCommentController) Delete(c *fiber.Ctx) error {
	taskID, err := h.taskID(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(strings.TrimSpace(c.Params("commentId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid comment id")
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var m taskModel.TaskCommentModel
	if err := h.DB.
		First(&m, "comment_id = ? AND comment_task_id = ?", commentID, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Comment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch comment")
	}
	if m.CommentAuthorID != userID && helperAuth.GetRole(c) != constants.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "You may only delete your own comments")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete comment")
	}
	return helper.JsonDeleted(c, "Comment deleted", fiber.Map{"comment_id": commentID})
}
