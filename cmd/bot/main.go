package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"subquest/internal/catalog"
	"subquest/internal/config"
	"subquest/internal/handler"
	applog "subquest/internal/logger"
	"subquest/internal/notify"
	"subquest/internal/repository"
	"subquest/internal/repository/jsonfile"
	"subquest/internal/repository/memory"
	"subquest/internal/repository/postgres"
	"subquest/internal/repository/sqlite"
	"subquest/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const reloadTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := applog.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Subotica Quest Bot",
		zap.String("allowlist_backend", cfg.AllowList.Backend),
		zap.String("default_language", cfg.DefaultLanguage),
		zap.Bool("language_selection", cfg.LanguageSelection),
		zap.Bool("admin_commands", cfg.AdminCommands),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the allow-list store
	allowList, reloader, closeStore, err := openAllowList(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open allow-list", zap.Error(err))
	}
	defer closeStore()

	logger.Info("Allow-list ready")

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Bot error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize services
	cat := catalog.New(cfg.Language(), cfg.MaxAttempts)
	sink := notify.NewTelegramSink(bot, cfg.ChatID, logger)
	accessService := service.NewAccessService(allowList, cfg.AdminID, cfg.AdminCommands, logger)
	questService := service.NewQuestService(cat, memory.NewSessionRepo(), accessService, sink, service.QuestOptions{
		LanguageSelection: cfg.LanguageSelection,
		WelcomeImagePath:  cfg.WelcomeImagePath,
		SinkTimeout:       cfg.SinkTimeout,
	}, logger)
	maintenanceService := service.NewMaintenanceService(reloader, logger)

	// Initialize handler
	h := handler.NewHandler(bot, questService, accessService, cat, cfg.LanguageSelection, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start allow-list reload job
	scheduler, err := startReloadJob(ctx, cfg.AllowList.ReloadSchedule, reloader != nil, maintenanceService, logger)
	if err != nil {
		logger.Fatal("Failed to schedule allow-list reload", zap.Error(err))
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	cancel()

	logger.Info("Bot stopped gracefully")
}

// openAllowList opens the configured allow-list backend. The returned
// reloader is nil for database backends.
func openAllowList(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
) (repository.AllowListRepository, repository.Reloader, func(), error) {
	switch cfg.AllowList.Backend {
	case config.BackendPostgres:
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return postgres.NewAllowListRepo(db), nil, func() { db.Close() }, nil

	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.AllowList.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		repo := sqlite.NewAllowListRepo(db)
		if err := repo.InitSchema(ctx); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return repo, nil, func() { db.Close() }, nil

	default:
		repo, err := jsonfile.NewAllowListRepo(cfg.AllowList.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Info("Loaded allow-list file",
			zap.String("path", cfg.AllowList.Path),
			zap.Int("users", len(repo.List())),
		)
		return repo, repo, func() {}, nil
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case err == migrate.ErrNoChange:
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// startReloadJob re-reads the allow-list on schedule. It returns a nil
// scheduler when reloading is disabled or not needed.
func startReloadJob(
	ctx context.Context,
	schedule string,
	needed bool,
	maintenanceService *service.MaintenanceService,
	logger *zap.Logger,
) (*cron.Cron, error) {
	if schedule == "" || !needed {
		logger.Info("Allow-list reload job disabled")
		return nil, nil
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(schedule, func() {
		jobCtx, cancel := context.WithTimeout(ctx, reloadTimeout)
		defer cancel()
		_ = maintenanceService.ReloadAllowList(jobCtx)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	scheduler.Start()
	logger.Info("Allow-list reload job started", zap.String("schedule", schedule))
	return scheduler, nil
}
