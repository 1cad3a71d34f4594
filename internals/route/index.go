// internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "github.com/maruf-pfc/opsboard-sub000/internals/features/classes/route"
	contestRoute "github.com/maruf-pfc/opsboard-sub000/internals/features/contests/route"
	marketingRoute "github.com/maruf-pfc/opsboard-sub000/internals/features/marketing/route"
	paymentRoute "github.com/maruf-pfc/opsboard-sub000/internals/features/payments/route"
	paymentService "github.com/maruf-pfc/opsboard-sub000/internals/features/payments/service"
	taskRoute "github.com/maruf-pfc/opsboard-sub000/internals/features/tasks/route"
	userRoute "github.com/maruf-pfc/opsboard-sub000/internals/features/users/route"
	videoRoute "github.com/maruf-pfc/opsboard-sub000/internals/features/videosolutions/route"
	helper "github.com/maruf-pfc/opsboard-sub000/internals/helpers"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/cache"
	"github.com/maruf-pfc/opsboard-sub000/internals/helpers/oss"
	authMw "github.com/maruf-pfc/opsboard-sub000/internals/middlewares/auth"
)

var startTime time.Time

// Deps carries the shared singletons built in main.
type Deps struct {
	DB       *gorm.DB
	Cache    *cache.Cache
	Uploader *oss.Uploader
	Gateway  *paymentService.Gateway
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	app.Get("/health", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "", fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).Round(time.Second).String(),
		})
	})

	api := app.Group("/api/v1")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(api, d.DB)

	// ===================== PRIVATE =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := api.Group("", authMw.AuthMiddleware())

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserRoutes(private, d.DB, d.Uploader)

	log.Println("[INFO] Mounting Task routes...")
	taskRoute.TaskRoutes(private, d.DB, d.Cache)

	log.Println("[INFO] Mounting Class routes...")
	classRoute.ClassRoutes(private, d.DB, d.Cache)

	log.Println("[INFO] Mounting Contest routes...")
	contestRoute.ContestRoutes(private, d.DB, d.Cache)

	log.Println("[INFO] Mounting Video Solution routes...")
	videoRoute.VideoSolutionRoutes(private, d.DB, d.Cache)

	log.Println("[INFO] Mounting Marketing routes...")
	marketingRoute.MarketingTaskRoutes(private, d.DB, d.Cache)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentRoutes(private, d.DB, d.Cache, d.Gateway)
}
