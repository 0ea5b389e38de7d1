package router

import (
	"net/http"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/Adarshcode-012/ActivityHub/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)
	Me(c *ginext.Context)
	ListActivities(c *ginext.Context)
	GetActivity(c *ginext.Context)
	CreateActivity(c *ginext.Context)
	UpdateActivity(c *ginext.Context)
	DeleteActivity(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	MyBookings(c *ginext.Context)
}

type Options struct {
	Mode         string
	AllowOrigins []string
	Verifier     middleware.TokenVerifier
}

func InitRouter(opts Options, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(opts.Mode)
	router.Use(corsMiddleware(opts.AllowOrigins))
	router.Use(mw...)

	authenticated := middleware.Authenticate(opts.Verifier)
	adminOnly := middleware.RequireCapability(domain.CapabilityManageActivities)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/login", h.Login)
		api.GET("/auth/me", authenticated, h.Me)

		// Activities
		api.GET("/activities", h.ListActivities)
		api.GET("/activities/:id", h.GetActivity)

		admin := api.Group("/activities", authenticated, adminOnly)
		admin.POST("", h.CreateActivity)
		admin.PUT("/:id", h.UpdateActivity)
		admin.DELETE("/:id", h.DeleteActivity)

		// Bookings
		bookings := api.Group("/bookings", authenticated, middleware.RequireCapability(domain.CapabilityBookActivity))
		bookings.POST("", h.CreateBooking)
		bookings.GET("/me", h.MyBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

func corsMiddleware(origins []string) ginext.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
