package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kineziomed/medbot/internal/storage"
	"github.com/kineziomed/medbot/pkg/config"
)

// cleardb wipes the bot database. Mode 1 keeps admin settings (password),
// mode 2 drops everything including them.
func main() {
	yes := flag.Bool("yes", false, "skip confirmation prompts")
	mode := flag.Int("mode", 0, "1 = keep admin settings, 2 = full wipe")
	flag.Parse()

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

	reader := bufio.NewReader(os.Stdin)

	if *mode == 0 {
		fmt.Println("Qaysi rejimda tozalash kerak?")
		fmt.Println("  1) Savollar va foydalanuvchilarni o'chirish (admin parol saqlanadi)")
		fmt.Println("  2) To'liq tozalash (admin parol ham o'chadi)")
		fmt.Print("Rejim [1/2]: ")
		switch readLine(reader) {
		case "1":
			*mode = 1
		case "2":
			*mode = 2
		default:
			fmt.Println("Bekor qilindi.")
			return
		}
	}
	if *mode != 1 && *mode != 2 {
		logger.Fatal("invalid mode", zap.Int("mode", *mode))
	}

	if !*yes {
		fmt.Printf("Diqqat: ma'lumotlar bazasi (%s) tozalanadi. Davom etasizmi? [yes/no]: ", targetName(cfg))
		if !isYes(readLine(reader)) {
			fmt.Println("Bekor qilindi.")
			return
		}
		if *mode == 2 {
			fmt.Print("To'liq tozalash admin parolni ham o'chiradi. Ishonchingiz komilmi? [yes/no]: ")
			if !isYes(readLine(reader)) {
				fmt.Println("Bekor qilindi.")
				return
			}
		}
	}

	store, err := openStorage(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if *mode == 2 {
		err = store.ClearCompletely(ctx)
	} else {
		err = store.ClearAllData(ctx, true)
	}
	if err != nil {
		logger.Fatal("failed to clear database", zap.Error(err))
	}

	if *mode == 2 {
		fmt.Println("✅ Baza to'liq tozalandi.")
	} else {
		fmt.Println("✅ Baza tozalandi, admin sozlamalari saqlandi.")
	}
}

func openStorage(cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	if cfg.Database.UsePostgres {
		return storage.NewPostgresStorage(storage.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		}, logger)
	}
	return storage.NewSQLiteStorage(cfg.Database.File, logger)
}

func targetName(cfg *config.Config) string {
	if cfg.Database.UsePostgres {
		return cfg.Database.DBName
	}
	return cfg.Database.File
}

func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

func isYes(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "y", "ha":
		return true
	}
	return false
}
