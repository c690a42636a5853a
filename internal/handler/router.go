package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"facility-booking/internal/handler/api"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Catalog     *api.CatalogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	write := []gin.HandlerFunc{authMiddleware.RequireWriteRole()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
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

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: write},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Reservation.Amend, Mw: write},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel, Mw: write},
			})
		}

		spaces := apiGroup.Group("/spaces")
		spaces.Use(authMiddleware.RequireAuth())
		{
			addRoutes(spaces, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateSpace, Mw: write},
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListSpaces},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetSpace},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateSpace, Mw: write},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeactivateSpace, Mw: write},
			})
		}

		resources := apiGroup.Group("/resources")
		resources.Use(authMiddleware.RequireAuth())
		{
			addRoutes(resources, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateResource, Mw: write},
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListResources},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetResource},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateResource, Mw: write},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeactivateResource, Mw: write},
			})
		}

		clients := apiGroup.Group("/clients")
		clients.Use(authMiddleware.RequireAuth())
		{
			addRoutes(clients, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateClient, Mw: write},
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListClients},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetClient},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateClient, Mw: write},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeactivateClient, Mw: write},
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
