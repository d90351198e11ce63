package api

import (
	"fintrack/docs"
	"fintrack/internal/api/handlers"
	"fintrack/pkg/auth"
	"fintrack/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Transaction  *handlers.TransactionHandler
	Report       *handlers.ReportHandler
	Subscription *handlers.SubscriptionHandler
	Budget       *handlers.BudgetHandler
	Achievement  *handlers.AchievementHandler
	Payment      *handlers.PaymentHandler
	Profile      *handlers.ProfileHandler
}

func SetupRouter(h *Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the documentation via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	transactions := protected.Group("/transactions")
	transactions.Post("", h.Transaction.Create)
	transactions.Get("", h.Transaction.ListMonth)
	transactions.Get("/export", h.Transaction.Export)
	transactions.Delete("/:id", h.Transaction.Delete)

	protected.Get("/report", h.Report.Monthly)

	subscriptions := protected.Group("/subscriptions")
	subscriptions.Post("", h.Subscription.Create)
	subscriptions.Get("", h.Subscription.List)
	subscriptions.Delete("/:id", h.Subscription.Delete)

	budgets := protected.Group("/budgets")
	budgets.Put("", h.Budget.Update)
	budgets.Get("", h.Budget.List)

	protected.Get("/achievements", h.Achievement.List)

	payment := protected.Group("/payment")
	payment.Post("/checkout", h.Payment.Checkout)
	payment.Post("/confirm", h.Payment.Confirm)

	profile := protected.Group("/profile")
	profile.Get("", h.Profile.Get)
	profile.Put("", h.Profile.Update)
	profile.Put("/password", h.Profile.ChangePassword)

	protected.Post("/feedback", h.Profile.Feedback)

	return app
}
