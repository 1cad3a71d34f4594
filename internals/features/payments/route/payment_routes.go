// internals/features/payments/route/payment_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	paymentController "github.com/maruf-pfc/opsboard-sub000/internals/features/payments/controller"
	paymentService "github.com/maruf-pfc/opsboard-sub000/internals/features/payments/service"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
	authMw "github.com/maruf-pfc/opsboard-sub000/internals/middlewares/auth"
)

func PaymentRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache, gw *paymentService.Gateway) {
	ctl := &paymentController.PaymentController{DB: db, Cache: c, Gateway: gw}
	g := r.Group("/payments", authMw.RequireRoles(constants.RoleManager))
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", authMw.RequireAdmin(), ctl.Delete)
	g.Post("/:id/checkout", ctl.CreateCheckout)
}
