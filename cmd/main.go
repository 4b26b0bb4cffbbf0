// Package main is the entry point for the inspection-service application.
//
// @title           Inspection Service API
// @version         1.0.0
// @description     Acceptance sampling for incoming and outgoing lots.
//
//	Resolves the single normal-inspection sampling plan for a lot and quality level,
//	tells the inspector which containers to open, and judges the defect count.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/inspectwise/inspection-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" issued by /api/auth/login. Required if JWT auth is enabled.
//
// @tag.name        Sampling
// @tag.description Sampling plans, drawing instructions and verdicts
//
// @tag.name        Inspections
// @tag.description Inspection reports and photo evidence
//
// @tag.name        Auth
// @tag.description Inspector accounts
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/inspectwise/inspection-service/docs" // swagger docs

	"github.com/inspectwise/inspection-service/config"
	"github.com/inspectwise/inspection-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	for _, key := range cfg.Invalid {
		log.Warn().Str("variable", key).Msg("Ignoring unparsable environment variable, using default")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := server.Run(ctx)
	stop()

	application.Close(context.Background())

	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
