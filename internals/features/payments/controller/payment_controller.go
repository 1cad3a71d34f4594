// internals/features/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	"github.com/maruf-pfc/opsboard-sub000/internals/features/mirror"
	paymentDTO "github.com/maruf-pfc/opsboard-sub000/internals/features/payments/dto"
	paymentModel "github.com/maruf-pfc/opsboard-sub000/internals/features/payments/model"
	paymentService "github.com/maruf-pfc/opsboard-sub000/internals/features/payments/service"
	userModel "github.com/maruf-pfc/opsboard-sub000/internals/features/users/model"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
)

var paymentMirrorSpec = mirror.Spec{Kind: constants.KindPayments}

type PaymentController struct {
	DB      *gorm.DB
	Cache   *cache.Cache
	Gateway *paymentService.Gateway // nil when no server key is configured
}

// GET /payments
func (h *PaymentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&paymentModel.PaymentModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		q = q.Where("payment_course_name = ?", course)
	}
	if batch := strings.TrimSpace(c.Query("batch")); batch != "" {
		q = q.Where("payment_batch_no = ?", batch)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list payments")
	}

	var rows []paymentModel.PaymentModel
	if err := q.
		Preload("AssignedTo").Preload("ReportedTo").
		Order("payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list payments")
	}

	return helper.JsonList(c, "", paymentDTO.FromPaymentModels(rows), helper.BuildPagination(total, paging))
}

// GET /payments/:id
func (h *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m paymentModel.PaymentModel
	if err := h.DB.
		Preload("AssignedTo").Preload("ReportedTo").
		First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment")
	}
	return helper.JsonOK(c, "", paymentDTO.FromPaymentModel(m))
}

// POST /payments
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req paymentDTO.PaymentRequest
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
		if _, err := sync.Create(paymentMirrorSpec, paymentDTO.ToMirrorRecord(m)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonCreated(c, "Payment created", paymentDTO.FromPaymentModel(m))
}

// PUT /payments/:id
func (h *PaymentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req paymentDTO.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m paymentModel.PaymentModel
	if err := h.DB.First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment")
	}

	req.ApplyTo(&m)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		if _, err := sync.Update(paymentMirrorSpec, paymentDTO.ToMirrorRecord(m)); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonUpdated(c, "Payment updated", paymentDTO.FromPaymentModel(m))
}

// DELETE /payments/:id
func (h *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m paymentModel.PaymentModel
	if err := h.DB.First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete payment")
		}
		sync := mirror.NewService(mirror.NewGormStore(tx))
		return sync.Delete(paymentMirrorSpec, paymentDTO.ToMirrorRecord(m))
	}); err != nil {
		return err
	}

	h.Cache.Invalidate(c.UserContext(), cache.BoardKey)
	return helper.JsonDeleted(c, "Payment deleted", fiber.Map{"payment_id": id})
}

// POST /payments/:id/checkout
// Mints a Snap payment link for the payee and stores it on the record.
func (h *PaymentController) CreateCheckout(c *fiber.Ctx) error {
	if h.Gateway == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Payment gateway not configured")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var m paymentModel.PaymentModel
	if err := h.DB.First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment")
	}
	if m.PaymentLinkURL != nil {
		return helper.JsonOK(c, "Checkout link already exists", paymentDTO.FromPaymentModel(m))
	}

	cust := paymentService.CustomerInput{Name: "Ops Dashboard"}
	if m.PaymentAssignedToID != nil {
		var u userModel.UserModel
		if err := h.DB.First(&u, "id = ?", *m.PaymentAssignedToID).Error; err == nil {
			cust = paymentService.CustomerInput{Name: u.Name, Email: u.Email}
		}
	}

	orderID, redirectURL, err := h.Gateway.CreateCheckout(m, cust)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m.PaymentOrderID = &orderID
	m.PaymentLinkURL = &redirectURL
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store checkout link")
	}
	return helper.JsonOK(c, "Checkout link created", paymentDTO.FromPaymentModel(m))
}
