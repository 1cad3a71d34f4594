// internals/features/classes/route/class_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "github.com/maruf-pfc/opsboard-sub000/internals/features/classes/controller"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
	authMw "github.com/maruf-pfc/opsboard-sub000/internals/middlewares/auth"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
)

func ClassRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctl := &classController.ClassController{DB: db, Cache: c}
	g := r.Group("/classes")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", authMw.RequireRoles(constants.RoleManager, constants.RoleTrainer), ctl.Create)
	g.Put("/:id", authMw.RequireRoles(constants.RoleManager, constants.RoleTrainer), ctl.Update)
	g.Delete("/:id", authMw.RequireRoles(constants.RoleManager), ctl.Delete)
}
