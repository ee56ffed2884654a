package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-notify-relay/internal/application/advisor"
	"github.com/go-notify-relay/internal/application/linebot"
	"github.com/go-notify-relay/internal/application/location"
	"github.com/go-notify-relay/internal/config"
	"github.com/go-notify-relay/internal/infrastructure/discord"
	"github.com/go-notify-relay/internal/infrastructure/geocoder"
	"github.com/go-notify-relay/internal/infrastructure/line"
	"github.com/go-notify-relay/internal/transport/http/handler"
	appmiddleware "github.com/go-notify-relay/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Resolver  geocoder.Resolver
	Notifier  discord.Notifier
	Messenger line.Messenger
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Line-Signature"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — the location route is unauthenticated.
	// Overflow is shed with the route's fixed success body: the tracking
	// client must always see 200 [], even when its reports are dropped.
	ingestRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	locationSvc := location.NewService(location.ServiceDeps{
		Resolver:       deps.Resolver,
		Notifier:       deps.Notifier,
		Messenger:      deps.Messenger,
		Advisor:        advisor.NewService(),
		ChannelURL:     cfg.DiscordLocationWebhookURL,
		SpecialUserIDs: cfg.SpecialUserIDs,
	})
	linebotSvc := linebot.NewService(linebot.ServiceDeps{
		Messenger:  deps.Messenger,
		Notifier:   deps.Notifier,
		ChannelURL: cfg.DiscordLineUserWebhookURL,
	})

	healthH := handler.NewHealthHandler()
	webhookH := handler.NewWebhookHandler(linebotSvc)
	locationH := handler.NewLocationHandler(locationSvc)

	r.Get("/", healthH.Root)
	r.Get("/health-check/{action}", healthH.Ping)
	r.Post("/health-check/{action}", healthH.Ping)
	r.With(appmiddleware.LineSignature(cfg.LINEChannelSecret)).Post("/webhook", webhookH.Receive)
	r.With(ingestRL.LimitShed(`[]`)).Post("/location", locationH.Receive)

	return r
}
