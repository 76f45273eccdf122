package httpapi

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sentinela/gateway/internal/backend"
	"github.com/sentinela/gateway/internal/config"
	"github.com/sentinela/gateway/internal/http/handlers"
	"github.com/sentinela/gateway/internal/http/middleware"
	"github.com/sentinela/gateway/internal/service"
	"github.com/sentinela/gateway/internal/session"

	_ "github.com/sentinela/gateway/docs"
)

type Deps struct {
	Backend   *backend.Client
	Dashboard *service.Dashboard
	Notes     *service.Notes
	Sessions  *session.Tracker
	Logger    zerolog.Logger
}

func Router(cfg config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.AdminKeyHeader, middleware.RequestIDHeader, middleware.PinHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = splitOrigins(cfg.CORSAllowed)
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Backend:     deps.Backend,
		Dashboard:   deps.Dashboard,
		Notes:       deps.Notes,
		Sessions:    deps.Sessions,
		Validator:   validator.New(),
		Logger:      deps.Logger,
		Placeholder: cfg.PlaceholderPhoto,
	}

	r.GET("/healthz", h.Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.Session(middleware.SessionDefaults{PIN: cfg.DefaultPIN, Token: cfg.APIToken}, deps.Sessions, nil))
	{
		api.GET("/session", h.SessionGet)
		api.POST("/session", h.SessionCreate)
		api.DELETE("/session", h.SessionDelete)

		api.GET("/summary", h.Summary)
		widgets := api.Group("/widgets")
		widgets.GET("/daily", h.WidgetDaily)
		widgets.GET("/hourly", h.WidgetHourly)
		widgets.GET("/top-numbers", h.WidgetTopNumbers)
		widgets.GET("/call-map", h.WidgetCallMap)
		widgets.GET("/recent-calls", h.WidgetRecentCalls)
		widgets.GET("/alerts", h.WidgetAlerts)
		widgets.GET("/profile", h.WidgetProfile)
		widgets.GET("/network", h.WidgetNetwork)
		widgets.GET("/contact", h.WidgetContact)

		api.PUT("/calls/:id/note", h.CallNotePut)
		api.GET("/lada/:number", h.Lada)
		api.GET("/photos/:pin", h.Photo)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.GET("/users", h.UsersList)
		admin.POST("/users", h.UsersCreate)
		admin.DELETE("/users/:id", h.UsersDelete)
		admin.GET("/dangerous-words", h.DangerousWordsList)
		admin.POST("/dangerous-words", h.DangerousWordsCreate)
		admin.DELETE("/dangerous-words/:id", h.DangerousWordsDelete)
	}

	if cfg.IsDev() {
		proxy, err := NewDevProxy(cfg.BackendURL, cfg.Prefixes(), deps.Logger)
		if err != nil {
			deps.Logger.Error().Err(err).Msg("dev proxy disabled")
		} else {
			r.NoRoute(proxy.Handle)
		}
	}

	return r
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
