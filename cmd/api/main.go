package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-notify-relay/internal/config"
	"github.com/go-notify-relay/internal/infrastructure/discord"
	"github.com/go-notify-relay/internal/infrastructure/geocoder"
	"github.com/go-notify-relay/internal/infrastructure/line"
	transporthttp "github.com/go-notify-relay/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	if cfg.DiscordLocationWebhookURL == "" {
		log.Println("WARN: location webhook URL not set, location notifications disabled")
	}
	if cfg.DiscordLineUserWebhookURL == "" {
		log.Println("WARN: LINE-user webhook URL not set, user notifications disabled")
	}
	if len(cfg.SpecialUserIDs) == 0 {
		log.Println("WARN: no special user ids set, arrival pushes disabled")
	}

	// One shared client for every outbound call. No per-call timeout is
	// configured beyond this; a hung collaborator stalls only the requests
	// that depend on it.
	httpClient := &http.Client{Timeout: 60 * time.Second}

	deps := &transporthttp.Deps{
		Resolver:  geocoder.NewClient(httpClient, cfg.GeocoderBaseURL),
		Notifier:  discord.NewNotifier(httpClient),
		Messenger: line.NewClient(httpClient, cfg.LINEAPIBaseURL, cfg.LINEChannelAccessToken),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("LINE relay listening on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
