// Command sttproxy serves POST /api/v1/stt/transcribe and forwards uploaded
// audio to the configured speech-to-text endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kbukum/sttproxy/bootstrap"
	"github.com/kbukum/sttproxy/config"
	"github.com/kbukum/sttproxy/logger"
	"github.com/kbukum/sttproxy/observability"
	"github.com/kbukum/sttproxy/server"
	"github.com/kbukum/sttproxy/transcription"
	"github.com/kbukum/sttproxy/transcription/whisper"
	"github.com/kbukum/sttproxy/util"
	"github.com/kbukum/sttproxy/version"
)

const serviceName = "sttproxy"

func main() {
	configFile := flag.String("config", "", "path to config.yml (default: search ./cmd/sttproxy, ./config, .)")
	envFile := flag.String("env", "", "path to .env file (default: search next to the config)")
	flag.Parse()

	if err := run(context.Background(), *configFile, *envFile); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configFile, envFile string) error {
	var cfg AppConfig
	if err := config.LoadConfig(serviceName, &cfg,
		config.WithConfigFile(configFile),
		config.WithEnvFile(envFile),
	); err != nil {
		return err
	}
	if cfg.Version == "" {
		cfg.Version = version.GetShortVersion()
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		return err
	}

	shutdownTelemetry, err := observability.Setup(ctx, cfg.Observability, observability.Resource{
		ServiceName:    cfg.Name,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
	})
	if err != nil {
		return fmt.Errorf("observability: %w", err)
	}
	app.OnStop(bootstrap.Hook(shutdownTelemetry))

	metrics, err := observability.NewMetrics(observability.Meter())
	if err != nil {
		return fmt.Errorf("observability: %w", err)
	}

	provider, err := whisper.NewProvider(cfg.GMS, whisper.WithMetrics(metrics))
	if err != nil {
		return err
	}
	if !provider.IsAvailable(ctx) {
		app.Logger.Warn("STT upstream is not fully configured; transcription calls will fail", logger.Fields(
			"stt_url", cfg.GMS.STTURL,
			"api_key_set", cfg.GMS.APIKey != "",
		))
	} else {
		app.Logger.Info("STT upstream configured", logger.Fields(
			"stt_url", cfg.GMS.STTURL,
			"api_key", util.MaskSecret(cfg.GMS.APIKey, 4),
			"model", cfg.GMS.Model,
		))
	}

	srv := server.New(cfg.Server, app.Logger)
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(cfg.Name, app.Components.HealthAll)
	transcription.NewHandler(provider, cfg.GMS.DefaultLanguage).RegisterRoutes(srv.GinEngine())

	if err := app.RegisterComponent(transcription.NewComponent(provider)); err != nil {
		return err
	}
	if err := app.RegisterComponent(server.NewComponent(srv)); err != nil {
		return err
	}

	return app.Run(ctx)
}
