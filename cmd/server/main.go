// @title Training Dashboard API
// @version 1.0
// @description Internal staff dashboard over the course-management backend: event catalog, rosters, CSV exports.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trainingdash/config"
	authadapter "trainingdash/internal/adapters/auth"
	"trainingdash/internal/adapters/coursebackend"
	"trainingdash/internal/adapters/email"
	deliveryhttp "trainingdash/internal/delivery/http"
	"trainingdash/internal/delivery/http/controllers"
	"trainingdash/internal/delivery/http/middleware"
	"trainingdash/internal/services"
)

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	// Outbound HTTP to the course backend; the per-request context timeout is
	// applied by the services, this is the transport-level ceiling.
	backendHTTP := &http.Client{Timeout: cfg.BackendTimeout}
	backend := coursebackend.NewClient(backendHTTP, coursebackend.Config{
		BaseURL:  cfg.BackendBaseURL,
		Username: cfg.BackendUsername,
		Password: cfg.BackendPassword,
	})

	sessions := authadapter.NewJWTSessions(cfg.SessionSecret)
	identity := authadapter.NewGoogleProvider(authadapter.GoogleConfig{
		ClientID:     cfg.OAuthClientID,
		ClientSecret: cfg.OAuthClientSecret,
		RedirectURL:  cfg.OAuthRedirectURL,
	})

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	eventService := services.NewEventService(backend, logger, cfg.BackendTimeout)
	rosterService := services.NewRosterService(backend, logger, cfg.BackendTimeout)
	exportService := services.NewExportService(backend, eventService, rosterService, mailer, logger, cfg.BackendTimeout)
	authService := services.NewAuthService(identity, sessions, cfg.StaffDomain, cfg.SessionTTL)

	secureCookie := cfg.Environment == "production"
	eventController := controllers.NewEventController(logger, eventService, rosterService)
	exportController := controllers.NewExportController(logger, exportService, cfg.StaffDomain)
	authController := controllers.NewAuthController(logger, authService, cfg.SessionTTL, secureCookie)

	mux := deliveryhttp.NewRouter(eventController, exportController, authController, sessions)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	logger.Info("server stopped")
}
