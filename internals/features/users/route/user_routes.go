// internals/features/users/route/user_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "github.com/maruf-pfc/opsboard-sub000/internals/features/users/controller"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/oss"
	"github.com/maruf-pfc/opsboard-sub000/internals/middlewares"
	authMw "github.com/maruf-pfc/opsboard-sub000/internals/middlewares/auth"
)

// AuthRoutes is mounted without the auth middleware.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &userController.AuthController{DB: db}
	g := r.Group("/auth")
	g.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	g.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	g.Post("/logout", ctl.Logout)
}

func UserRoutes(r fiber.Router, db *gorm.DB, up *oss.Uploader) {
	ctl := &userController.UserController{DB: db, Uploader: up}
	g := r.Group("/users")
	g.Get("/me", ctl.Me)
	g.Put("/me", ctl.UpdateMe)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", authMw.RequireAdmin(), ctl.Create)
	g.Put("/:id", authMw.RequireAdmin(), ctl.Update)
	g.Delete("/:id", authMw.RequireAdmin(), ctl.Delete)
}
