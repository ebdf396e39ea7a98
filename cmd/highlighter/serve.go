package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/jonathan/writing-highlighter/internal/config"
	"github.com/jonathan/writing-highlighter/internal/db"
	"github.com/jonathan/writing-highlighter/internal/highlights"
	"github.com/jonathan/writing-highlighter/internal/logging"
	"github.com/jonathan/writing-highlighter/internal/observability"
	"github.com/jonathan/writing-highlighter/internal/server"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Start an HTTP server exposing annotation, manual highlights and saved annotations. " +
		"DATABASE_URL enables Postgres storage, REDIS_URL a highlight cache and JWT_SECRET bearer auth.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigFile)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	annotator, err := newAnnotator(cfg, logger.Named("annotate"), metrics)
	if err != nil {
		return err
	}

	jwtConfig, err := config.LookupJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}

	srvCfg := server.Config{
		Port:      cfg.Port,
		Annotator: annotator,
		Metrics:   metrics,
		Gatherer:  registry,
		Logger:    logger,
		JWT:       jwtConfig,
	}
	if err := attachStorage(cfg, logger, &srvCfg); err != nil {
		return err
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}

// attachStorage connects Postgres and Redis when configured. Without either, highlights
// live in memory and annotations are not archived.
func attachStorage(cfg config.Config, logger logging.Logger, srvCfg *server.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var store highlights.Store
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return err
		}
		store = database.Highlights()
		srvCfg.Archive = database
		srvCfg.Closers = append(srvCfg.Closers, database.Close)
		logger.Info("postgres storage enabled")
	}

	if cfg.RedisURL != "" {
		client, err := highlights.Connect(ctx, cfg.RedisURL)
		if err != nil {
			for _, c := range srvCfg.Closers {
				c()
			}
			return err
		}
		ttl := time.Duration(cfg.RedisTTL) * time.Second
		store = highlights.NewRedisCache(client, store, ttl, logger.Named("highlights"))
		srvCfg.Closers = append(srvCfg.Closers, func() { _ = client.Close() })
		logger.Info("redis highlight cache enabled", logging.Duration("ttl", ttl))
	}

	srvCfg.Highlights = store
	return nil
}
