package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"minesbot/bot"
	"minesbot/config"
	"minesbot/database"
	"minesbot/events"
	"minesbot/repository"
	"minesbot/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting mines bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// Session store: redis when configured, in-memory otherwise
	var sessions service.SessionStore
	var redisStore *repository.RedisSessionStore
	if cfg.SessionsRedisURL != "" {
		log.Info("Connecting to redis session store...")
		redisStore, err = repository.NewRedisSessionStore(ctx, cfg.SessionsRedisURL)
		if err != nil {
			db.Close()
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		sessions = redisStore
		log.Info("Redis session store initialized successfully")
	} else {
		sessions = repository.NewMemorySessionStore()
		log.Info("In-memory session store initialized")
	}

	// Initialize services
	log.Info("Initializing services...")
	locks := service.NewLockTable()
	minefields := service.NewMinefieldGenerator()
	userService := service.NewUserService(uowFactory, sessions, locks)
	gameService := service.NewGameService(uowFactory, sessions, minefields, locks, eventBus)
	bonusService := service.NewBonusService(uowFactory, locks)
	statsService := service.NewStatsService(uowFactory)
	shopService := service.NewShopService(uowFactory, locks)
	log.Info("Services initialized successfully")

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:             cfg.DiscordToken,
		GuildID:           cfg.DiscordGuildID,
		AnnounceChannelID: cfg.AnnounceChannelID,
	}
	discordBot, err := bot.New(botConfig, gameService, userService, bonusService, statsService, shopService, eventBus)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	if redisStore != nil {
		if err := redisStore.Close(); err != nil {
			log.Errorf("Error closing redis session store: %v", err)
		}
	}

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
