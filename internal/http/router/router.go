package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cyberlawyerhub/backend/internal/config"
	"github.com/cyberlawyerhub/backend/internal/http/middleware"
	"github.com/cyberlawyerhub/backend/internal/interface/http/handler"
)

// Handlers собирает все HTTP хэндлеры приложения.
type Handlers struct {
	Health       *handler.HealthHandler
	Checkout     *handler.CheckoutHandler
	Booking      *handler.BookingHandler
	Lawyer       *handler.LawyerHandler
	Availability *handler.AvailabilityHandler
	Dashboard    *handler.DashboardHandler
	FIR          *handler.FIRHandler
}

func SetupRouter(cfg *config.Config, h Handlers, tokens middleware.TokenVerifier) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg))

	r.GET("/health", h.Health.Health)

	api := r.Group("/api")
	auth := middleware.AuthMiddleware(tokens)

	// Ошибки авторизации checkout отдаёт в собственном формате, поэтому токен здесь необязателен.
	api.POST("/create-checkout",
		middleware.RateLimitMiddleware("checkout", cfg.RateLimitLimit, cfg.RateLimitPeriod),
		middleware.OptionalAuthMiddleware(tokens),
		h.Checkout.CreateCheckout,
	)

	lawyers := api.Group("/lawyers")
	{
		lawyers.GET("", h.Lawyer.List)
		lawyers.POST("", auth, h.Lawyer.Register)
		lawyers.GET("/:id", middleware.UUIDValidator("id"), h.Lawyer.Get)
		lawyers.GET("/:id/availability", middleware.UUIDValidator("id"), h.Lawyer.Availability)

		me := lawyers.Group("/me", auth)
		me.POST("/availability", h.Availability.Create)
		me.DELETE("/availability/:id", middleware.UUIDValidator("id"), h.Availability.Delete)
	}

	bookings := api.Group("/bookings", auth)
	{
		bookings.GET("/checkout/confirm", h.Booking.ConfirmCheckout)
		bookings.POST("/:id/confirm", middleware.UUIDValidator("id"), h.Booking.Confirm)
		bookings.POST("/:id/cancel", middleware.UUIDValidator("id"), h.Booking.Cancel)
	}

	dashboard := api.Group("/dashboard", auth)
	{
		dashboard.GET("/user", h.Dashboard.User)
		dashboard.GET("/lawyer", h.Dashboard.Lawyer)
	}

	firGroup := api.Group("/fir")
	{
		firGroup.GET("/options", h.FIR.Options)
		firGroup.POST("/report",
			middleware.RateLimitMiddleware("fir", cfg.RateLimitLimit, cfg.RateLimitPeriod),
			h.FIR.Report,
		)
	}

	return r
}
