package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"unistay/internal/domain/user"
	"unistay/internal/handler/api"
	"unistay/internal/handler/middleware"
	"unistay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Property     *api.PropertyHandler
	Booking      *api.BookingHandler
	Review       *api.ReviewHandler
	Wishlist     *api.WishlistHandler
	Message      *api.MessageHandler
	Notification *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		properties := apiGroup.Group("/properties")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Property.SearchProperties},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Property.GetProperty},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Property.GetAvailability},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListPropertyReviews},
			})

			hostOnly := properties.Group("")
			hostOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleHost))
			addRoutes(hostOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Property.CreateProperty},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Property.UpdateProperty},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Property.DeactivateProperty},
				{Method: http.MethodPost, Path: "/:id/block", Handler: h.Property.BlockDates},
				{Method: http.MethodPost, Path: "/:id/unblock", Handler: h.Property.UnblockDates},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMyBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.ConfirmBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.CancelBooking},
			})
		}

		host := apiGroup.Group("/host")
		host.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleHost))
		{
			addRoutes(host, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListHostBookings},
				{Method: http.MethodGet, Path: "/properties", Handler: h.Property.ListMyProperties},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.CreateReview},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Review.UpdateReview},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.DeleteReview},
			})
		}

		wishlist := apiGroup.Group("/wishlist")
		wishlist.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wishlist, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Wishlist.ListWishlist},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Wishlist.SaveProperty},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Wishlist.UnsaveProperty},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.ListNotifications},
			})
		}

		conversations := apiGroup.Group("/conversations")
		conversations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(conversations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Message.StartConversation},
				{Method: http.MethodGet, Path: "", Handler: h.Message.ListConversations},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: h.Message.ListMessages},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: h.Message.SendMessage},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
