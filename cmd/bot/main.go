package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kineziomed/medbot/internal/bot"
	"github.com/kineziomed/medbot/internal/storage"
	"github.com/kineziomed/medbot/pkg/config"
)

func main() {
	// A .env file is a local convenience; in production everything comes
	// from real environment variables.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if cfg.Telegram.Token == "" {
		logger.Fatal("bot token is not set, export BOT_TOKEN or fill config.yaml")
	}

	store, err := openStorage(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer store.Close()

	b, err := bot.New(cfg, store, logger)
	if err != nil {
		logger.Fatal("failed to create bot", zap.Error(err))
	}

	if err := b.Start(); err != nil {
		logger.Fatal("bot stopped", zap.Error(err))
	}
}

func openStorage(cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	switch {
	case cfg.Database.UseInMemory:
		logger.Info("using in-memory storage")
		return storage.NewMemoryStorage(), nil
	case cfg.Database.UsePostgres:
		logger.Info("using postgres storage",
			zap.String("host", cfg.Database.Host),
			zap.String("dbname", cfg.Database.DBName))
		return storage.NewPostgresStorage(storage.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		}, logger)
	default:
		logger.Info("using sqlite storage", zap.String("file", cfg.Database.File))
		return storage.NewSQLiteStorage(cfg.Database.File, logger)
	}
}
