package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-platform/internal/handler/api"
	"hotel-platform/internal/handler/middleware"
	"hotel-platform/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewIdentityRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, health *api.HealthHandler, authHandler *api.AuthHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupCommonRoutes(engine, health)

	auth := engine.Group("/auth")
	addRoutes(auth, []route{
		{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
		{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
		{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
	})
}

func NewBookingRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, health *api.HealthHandler, catalogHandler *api.CatalogHandler, bookingHandler *api.BookingHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupCommonRoutes(engine, health)

	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	addRoutes(engine.Group("/hotels"), []route{
		{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListHotels},
		{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateHotel, Mw: requireAuth},
		{Method: http.MethodGet, Path: "/:id/rooms", Handler: catalogHandler.ListRooms},
		{Method: http.MethodPost, Path: "/:id/rooms", Handler: catalogHandler.CreateRoom, Mw: requireAuth},
	})
	addRoutes(engine.Group("/rooms"), []route{
		{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetRoom},
	})

	bookings := engine.Group("/bookings")
	bookings.Use(authMiddleware.RequireAuth())
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "/my", Handler: bookingHandler.ListMine},
			{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel},
		})
	}
}

func NewLoggingRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, health *api.HealthHandler, logHandler *api.LogHandler) {
	setupMiddleware(engine, cfg, logger)
	setupCommonRoutes(engine, health)

	addRoutes(engine.Group("/logs"), []route{
		{Method: http.MethodGet, Path: "", Handler: logHandler.List},
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupCommonRoutes(engine *gin.Engine, health *api.HealthHandler) {
	engine.GET("/health", health.Health)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
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
