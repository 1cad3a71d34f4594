// internals/features/contests/route/contest_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	contestController "github.com/maruf-pfc/opsboard-sub000/internals/features/contests/controller"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
	authMw "github.com/maruf-pfc/opsboard-sub000/internals/middlewares/auth"
)

func ContestRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctl := &contestController.ContestController{DB: db, Cache: c}
	g := r.Group("/programming-contests")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", authMw.RequireRoles(constants.RoleManager, constants.RoleTrainer), ctl.Create)
	g.Put("/:id", authMw.RequireRoles(constants.RoleManager, constants.RoleTrainer), ctl.Update)
	g.Delete("/:id", authMw.RequireRoles(constants.RoleManager), ctl.Delete)
}
