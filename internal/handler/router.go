package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pousada-api/internal/handler/api"
	"pousada-api/internal/handler/middleware"
	"pousada-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the api handlers wired into the router.
type Handlers struct {
	Auth        *api.AuthHandler
	User        *api.UserHandler
	File        *api.FileHandler
	Consumption *api.ConsumptionHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, rateLimiter *middleware.RateLimiter, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, rateLimiter)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, rateLimiter *middleware.RateLimiter) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(rateLimiter.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/payment/webhook", Handler: h.Payment.Webhook},
			{Method: http.MethodGet, Path: "/file/download", Handler: h.File.Download},
		})

		users := apiGroup.Group("/user")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPut, Path: "/password", Handler: h.Auth.ChangePassword},
				{Method: http.MethodPut, Path: "/profile", Handler: h.Auth.UpdateProfile},
				{Method: http.MethodDelete, Path: "/profile", Handler: h.Auth.RemoveProfile},
				{Method: http.MethodGet, Path: "/autocomplete", Handler: h.User.FindAllAutocomplete},
				{Method: http.MethodGet, Path: "", Handler: h.User.FindAndCountAll},
				{Method: http.MethodPost, Path: "", Handler: h.User.Create},
				{Method: http.MethodDelete, Path: "", Handler: h.User.DestroyAll},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.FindByID},
				{Method: http.MethodPut, Path: "/:id", Handler: h.User.Update},
			})
		}

		files := apiGroup.Group("/file")
		files.Use(authMiddleware.RequireAuth())
		{
			addRoutes(files, []route{
				{Method: http.MethodPost, Path: "", Handler: h.File.Upload},
				{Method: http.MethodGet, Path: "/:id", Handler: h.File.FindByID},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.File.Destroy},
			})
		}

		consumptions := apiGroup.Group("/consumption")
		consumptions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(consumptions, []route{
				{Method: http.MethodGet, Path: "/autocomplete", Handler: h.Consumption.FindAllAutocomplete},
				{Method: http.MethodGet, Path: "", Handler: h.Consumption.FindAndCountAll},
				{Method: http.MethodPost, Path: "", Handler: h.Consumption.Create},
				{Method: http.MethodDelete, Path: "", Handler: h.Consumption.DestroyAll},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Consumption.FindByID},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Consumption.Update},
			})
		}

		reservations := apiGroup.Group("/reservation")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/autocomplete", Handler: h.Reservation.FindAllAutocomplete},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.FindAndCountAll},
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodDelete, Path: "", Handler: h.Reservation.DestroyAll},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.FindByID},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update},
			})
		}

		payments := apiGroup.Group("/payment")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "/latest-reservation", Handler: h.Payment.FindLatestReservation},
				{Method: http.MethodGet, Path: "", Handler: h.Payment.FindAndCountAll},
				{Method: http.MethodPost, Path: "", Handler: h.Payment.Create},
				{Method: http.MethodDelete, Path: "", Handler: h.Payment.DestroyAll},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Payment.FindByID},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Payment.Update},
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
