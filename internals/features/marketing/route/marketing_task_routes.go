// internals/features/marketing/route/marketing_task_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	marketingController "github.com/maruf-pfc/opsboard-sub000/internals/features/marketing/controller"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
	authMw "github.com/maruf-pfc/opsboard-sub000/internals/middlewares/auth"
)

func MarketingTaskRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctl := &marketingController.MarketingTaskController{DB: db, Cache: c}
	g := r.Group("/email-marketing")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", authMw.RequireRoles(constants.RoleManager), ctl.Create)
	g.Put("/:id", authMw.RequireRoles(constants.RoleManager), ctl.Update)
	g.Delete("/:id", authMw.RequireRoles(constants.RoleManager), ctl.Delete)
}
