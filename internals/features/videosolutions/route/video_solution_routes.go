// internals/features/videosolutions/route/video_solution_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
	videoController "github.com/maruf-pfc/opsboard-sub000/internals/features/videosolutions/controller"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
	authMw "github.com/maruf-pfc/opsboard-sub000/internals/middlewares/auth"
)

func VideoSolutionRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctl := &videoController.VideoSolutionController{DB: db, Cache: c}
	g := r.Group("/contest-video-solutions")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", authMw.RequireRoles(constants.RoleManager, constants.RoleTrainer), ctl.Create)
	g.Put("/:id", authMw.RequireRoles(constants.RoleManager, constants.RoleTrainer), ctl.Update)
	g.Delete("/:id", authMw.RequireRoles(constants.RoleManager), ctl.Delete)
}
