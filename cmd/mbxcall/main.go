package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"mbxcall/internal/application/usecase/call"
	"mbxcall/internal/infrastructure/config"
	"mbxcall/internal/infrastructure/logger"
	"mbxcall/internal/infrastructure/svc"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "mbxcall",
		Usage:     "call a signed Binance REST API with curl or directly over HTTP",
		UsageText: usageText,
		Flags:     appFlags,
		Before: func(c *cli.Context) error {
			logger.Setup(c.Bool("verbose"))
			return nil
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if err := config.LoadEnvFile(c.String("env-file")); err != nil {
		log.Warn().Err(err).Str("env_file", c.String("env-file")).Msg("env file ignored")
	}

	var base config.Settings
	if file := c.String("file"); file != "" {
		profile, err := config.Load(file, c.String("tag"))
		if err != nil {
			return err
		}
		base = profile.Settings()
	}

	flags, err := flagSettings(c)
	if err != nil {
		return err
	}
	settings := base.Override(flags).WithEnvCredentials()

	sc, err := svc.New(c.Context, settings, svc.Options{
		Execute: svc.ExecuteMode(c.Int("execute")),
		Tool:    c.String("curl"),
		Timeout: c.Duration("timeout"),
	})
	if err != nil {
		return err
	}
	defer sc.Close()

	log.Info().
		Str("url", settings.URL).
		Str("method", settings.Method).
		Str("execute", sc.Options.Execute.String()).
		Msg("mbxcall started")

	_, err = call.NewService(sc.BuildCallServiceDeps()).Run(c.Context, sc.CallRequest())
	return err
}

func main() {
	logger.Setup(false)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp().RunContext(ctx, os.Args)
	stop()
	if err != nil {
		if config.IsConfigError(err) {
			log.Error().Err(err).Msg("config error")
		} else {
			log.Error().Err(err).Msg("operation error")
		}
		os.Exit(1)
	}
}
