package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"visitorbadge/internal/config"
	"visitorbadge/internal/handler"
	"visitorbadge/internal/model"
	"visitorbadge/internal/mq"
	"visitorbadge/internal/render"
	"visitorbadge/internal/repository"
	"visitorbadge/internal/service"
	"visitorbadge/pkg/middleware"
	"visitorbadge/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Visitor Badge API
// @version 1.0
// @description Visitor counter badges with per-badge analytics

// @license.name MIT

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize storage
	storage, mysqlRepo, err := openStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Database.Backend).Msg("Failed to open storage")
	}
	defer storage.Close()

	// Legacy counters are optional
	var migrator *service.LegacyMigrator
	if cfg.Legacy.Redis.Addr != "" {
		legacyRepo := repository.NewRedisRepository(&cfg.Legacy.Redis)
		defer legacyRepo.Close()
		migrator = service.NewLegacyMigrator(legacyRepo, util.NewMD5Hasher(cfg.Legacy.Salt))
	}

	// Initialize MQ (optional, can be nil)
	var mqProducer mq.ProducerInterface
	if cfg.RocketMQ.NameServer != "" {
		producer, err := mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		} else {
			mqProducer = producer
			defer producer.Close()
		}
	}

	renderer, err := render.NewShieldsRenderer(&cfg.Shields)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize badge renderer")
	}

	// Initialize services
	badgeSvc := service.NewBadgeService(service.Options{
		Storage:  storage,
		Migrator: migrator,
		Producer: mqProducer,
		Limits: map[model.LimitClass]model.RateLimitConfig{
			model.LimitBadge:     limitFromConfig(cfg.RateLimit.Badge),
			model.LimitAnalytics: limitFromConfig(cfg.RateLimit.Analytics),
		},
		Badge: service.BadgeOptions{
			Retention:       cfg.Retention.Window,
			CleanupInterval: cfg.Retention.CleanupInterval,
		},
		IdleTTL: cfg.Retention.IdleTTL,
	})

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	badgeSvc.StartJanitor(bgCtx, cfg.Retention.IdleTTL)
	scheduler := service.NewCleanupScheduler(storage, badgeSvc, cfg.Retention.SweepInterval, cfg.Retention.SweepBatch)
	scheduler.Start(bgCtx)

	// Hit logs are written by the consumer into MySQL
	if cfg.RocketMQ.NameServer != "" && mysqlRepo != nil {
		mqConsumer, err := mq.NewConsumer(&cfg.RocketMQ, mq.NewHitLogHandler(mysqlRepo))
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := handler.NewPublicRouter(badgeSvc, renderer, cfg.Server.Homepage,
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		corsMiddleware(),
	)

	// Start server
	servers := []*http.Server{{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}}

	// Entity API only listens on its own port
	if cfg.Internal.Enabled {
		if cfg.Internal.Token == "" {
			log.Warn().Int("port", cfg.Internal.Port).Msg("Internal API enabled without a token")
		}
		servers = append(servers, &http.Server{
			Addr: fmt.Sprintf(":%d", cfg.Internal.Port),
			Handler: handler.NewInternalRouter(badgeSvc, cfg.Internal.Token,
				middleware.RequestID(),
				middleware.Logger(),
				middleware.Recovery(),
			),
		})
	}

	// Graceful shutdown
	for _, srv := range servers {
		go func(srv *http.Server) {
			log.Info().Msgf("Starting server on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatal().Err(err).Str("addr", srv.Addr).Msg("Failed to start server")
			}
		}(srv)
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Str("addr", srv.Addr).Msg("Server forced to shutdown")
		}
	}

	log.Info().Msg("Server exited")
}

// openStorage opens the configured entity store.
// The MySQL repository is also returned when available so hit logs can be written.
func openStorage(cfg *config.Config) (repository.StorageProvider, *repository.MySQLRepository, error) {
	switch cfg.Database.Backend {
	case "mysql":
		repo, err := repository.NewMySQLRepository(&cfg.Database.MySQL)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo, nil
	case "redis":
		return repository.NewRedisRepository(&cfg.Database.Redis), nil, nil
	case "memory":
		log.Warn().Msg("Using in-memory storage, badge data will not survive a restart")
		return repository.NewMemoryRepository(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database backend %q", cfg.Database.Backend)
	}
}

func limitFromConfig(c config.LimitClass) model.RateLimitConfig {
	return model.RateLimitConfig{
		MaxRequests: c.MaxRequests,
		WindowMs:    c.Window.Milliseconds(),
	}
}

// configPath honours CONFIG_PATH for container deployments
func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "configs/config.yaml"
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset, Retry-After, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
