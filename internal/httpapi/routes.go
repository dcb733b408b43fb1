package httpapi

import (
	"net/http"
	"time"

	"github.com/DoyleJ11/lol-cooldowns/internal/logging"
	"github.com/DoyleJ11/lol-cooldowns/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Options struct {
	AllowedOrigins []string
	PushInterval   time.Duration
}

func SetupRoutes(c Collector, opts Options, logger *zap.Logger) http.Handler {
	logger = logger.Named("httpapi")
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Middleware(logger))
	r.Use(middleware.Recoverer)
	// The overlay page is served from another origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	r.Get("/cooldowns", Cooldowns(c, logger))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(c, ws.Options{Interval: opts.PushInterval, OriginPatterns: opts.AllowedOrigins}, logger))
	return r
}
