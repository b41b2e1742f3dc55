package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/folio-dev/folio/internal/chatbot"
	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/httpserver"
	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/logger"
	"github.com/folio-dev/folio/internal/redis"
	filestore "github.com/folio-dev/folio/internal/store/file"
	redisstore "github.com/folio-dev/folio/internal/store/redis"
	"github.com/folio-dev/folio/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis only backs query analytics, so unlike the document store it is
	// optional: unreachable or unconfigured means counters are skipped.
	var redisClient *goredis.Client
	if cfg.RedisAddr == "" {
		loggerClient.Info("redis not configured, query analytics disabled")
	} else {
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, loggerClient)
		if err != nil {
			loggerClient.Warn("redis unavailable, query analytics disabled",
				logger.Error(err))
		} else {
			redisClient = client
		}
	}

	// Classifier rules: built-in order unless a rules file overrides it
	rules := chatbot.DefaultRules()
	if cfg.RulesFile != "" {
		loaded, err := chatbot.LoadRules(cfg.RulesFile)
		if err != nil {
			loggerClient.Warn("failed to load rules file, using built-in rules",
				logger.String("file", cfg.RulesFile),
				logger.Error(err))
		} else {
			loggerClient.Info("loaded classifier rules",
				logger.String("file", cfg.RulesFile),
				logger.Int("rules", len(loaded)))
			rules = loaded
		}
	}

	store := filestore.New(cfg.DataFile, loggerClient)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:     loggerClient,
		Store:      store,
		Analytics:  redisstore.NewAnalytics(redisClient),
		Classifier: chatbot.NewClassifier(rules),
		StartTime:  time.Now(),
		Version:    version.Version,
		Commit:     version.Commit,
		BuildDate:  version.BuildDate,
		GoVersion:  version.GoVersion,
		TimeNow:    time.Now,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting folio v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("folio %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)
	a.logger.Info("serving portfolio document",
		logger.String("file", a.cfg.DataFile))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ folio stopped cleanly")
	return nil
}
