// internals/features/tasks/route/task_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taskController "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/controller"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
)

func TaskRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	tasks := &taskController.TaskController{DB: db, Cache: c}
	comments := &taskController.TaskCommentController{DB: db}

	g := r.Group("/tasks")
	g.Get("/", tasks.List)
	g.Get("/board", tasks.Board)
	g.Get("/:id", tasks.GetByID)
	g.Post("/", tasks.Create)
	g.Put("/:id", tasks.Update)
	g.Patch("/:id/status", tasks.UpdateStatus)
	g.Delete("/:id", tasks.Delete)

	g.Get("/:id/comments", comments.List)
	g.Post("/:id/comments", comments.Create)
	g.Put("/:id/comments/:commentId", comments.Update)
	g.Delete("/:id/comments/:commentId", comments.Delete)
}
