package server

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/charan-kumar-kamasani/authentik/internal/api/handler"
	"github.com/charan-kumar-kamasani/authentik/internal/formconfig"
	"github.com/charan-kumar-kamasani/authentik/internal/server/middleware"
)

// Config holds router settings.
type Config struct {
	AllowedOrigins string
}

// New wires the form-configuration API onto a chi router.
func New(st formconfig.Store, cfg Config) huma.API {
	r := chi.NewRouter()

	allowed := cfg.AllowedOrigins
	if allowed == "" {
		allowed = "http://localhost:5173"
	}
	origins := strings.Split(allowed, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Actor"},
		AllowCredentials: true,
	}))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	api := humachi.New(r, huma.DefaultConfig("FormConfig API", "1.0.0"))
	api.UseMiddleware(middleware.Metrics)
	handler.Register(api, &handler.FormConfigHandler{Store: st, Policy: formconfig.UnknownIgnore})
	return api
}
