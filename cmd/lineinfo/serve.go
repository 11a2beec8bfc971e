package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"

	"github.com/LHMTR/haruto-information/internal/app"
	"github.com/LHMTR/haruto-information/internal/appconf"
	"github.com/LHMTR/haruto-information/internal/restapi"
	"github.com/LHMTR/haruto-information/internal/webui"
)

var (
	servePort        int
	serveEnv         string
	serveDefaultLang string
	serveRateLimit   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the line pages and the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("port") {
			cfg.Port = servePort
		}
		if flags.Changed("env") {
			cfg.EnvName = serveEnv
			cfg.Env = appconf.EnvFlagToEnvironment(serveEnv)
		}
		if flags.Changed("default-lang") {
			cfg.DefaultLanguage = serveDefaultLang
		}
		if flags.Changed("rate-limit") {
			cfg.RateLimit = serveRateLimit
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		application, err := app.New(cfg, logger)
		if err != nil {
			return fmt.Errorf("initializing application: %w", err)
		}

		handler, api, err := newHandler(application)
		if err != nil {
			return err
		}
		defer api.Close()

		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			IdleTimeout:  time.Minute,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			logger.Info("shutting down server")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("server shutdown failed", slog.String("error", err.Error()))
			}
		}()

		logger.Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.Env.String()),
			slog.String("data", cfg.DataSource),
			slog.String("default_lang", cfg.Language().Code()))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// newHandler registers the API and the HTML pages on one router and wraps it
// in the middleware chain.
func newHandler(application *app.Application) (http.Handler, *restapi.RestAPI, error) {
	router := httprouter.New()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)

	ui, err := webui.NewWebUI(application)
	if err != nil {
		api.Close()
		return nil, nil, fmt.Errorf("loading templates: %w", err)
	}
	ui.SetRoutes(router)

	return api.WithMiddleware(router), api, nil
}

func init() {
	defaults := appconf.DefaultConfig()
	serveCmd.Flags().IntVar(&servePort, "port", defaults.Port, "HTTP server port")
	serveCmd.Flags().StringVar(&serveEnv, "env", defaults.EnvName, "Environment (development|test|production)")
	serveCmd.Flags().StringVar(&serveDefaultLang, "default-lang", defaults.DefaultLanguage, "default reader language (zh-hans|zh-hant|en|ja|ko)")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", defaults.RateLimit, "requests per second allowed per client")
	rootCmd.AddCommand(serveCmd)
}
