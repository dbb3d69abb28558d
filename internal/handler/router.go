package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/authtoken"
	"courtbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	courtHandler *api.CourtHandler,
	reviewHandler *api.ReviewHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, courtHandler, reviewHandler, paymentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	courtHandler *api.CourtHandler,
	reviewHandler *api.ReviewHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(authtoken.RolePlayer)}},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodDelete, Path: "", Handler: bookingHandler.Delete},
				{Method: http.MethodPost, Path: "/quote", Handler: bookingHandler.Quote,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(authtoken.RolePlayer)}},
				{Method: http.MethodPost, Path: "/confirm", Handler: bookingHandler.Confirm,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(authtoken.RoleClub)}},
			})
		}

		courts := apiGroup.Group("/courts")
		{
			addRoutes(courts, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: courtHandler.Get},
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: bookingHandler.CourtCalendar},
				{Method: http.MethodPut, Path: "", Handler: courtHandler.Replace,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRole(authtoken.RoleClub)}},
			})
		}

		clubs := apiGroup.Group("/clubs")
		{
			addRoutes(clubs, []route{
				{Method: http.MethodGet, Path: "/:id/courts", Handler: courtHandler.ListByClub},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListByClub},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			playerOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRole(authtoken.RolePlayer)}
			addRoutes(reviews, []route{
				{Method: http.MethodPut, Path: "", Handler: reviewHandler.Upsert, Mw: playerOnly},
				{Method: http.MethodDelete, Path: "", Handler: reviewHandler.Delete, Mw: playerOnly},
				{Method: http.MethodGet, Path: "/eligibility", Handler: reviewHandler.Eligibility, Mw: playerOnly},
			})
		}

		// Authenticated by signature, not bearer token
		apiGroup.POST("/payments/webhook", paymentHandler.Webhook)
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
