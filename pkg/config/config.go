package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Social   SocialConfig   `mapstructure:"social"`
	Database DatabaseConfig `mapstructure:"database"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
	// ChannelID is the channel users must join before asking questions:
	// @username for public channels or a -100… numeric ID for private ones.
	// Empty disables the membership requirement.
	ChannelID string `mapstructure:"channel_id"`
}

type SocialConfig struct {
	InstagramURL string `mapstructure:"instagram_url"`
	YouTubeURL   string `mapstructure:"youtube_url"`
}

type DatabaseConfig struct {
	// File is the sqlite database path, used unless Postgres is configured.
	File        string `mapstructure:"file"`
	UseInMemory bool   `mapstructure:"use_in_memory"`

	// Postgres settings; UsePostgres switches the backend, DATABASE_URL
	// overrides all of it.
	UsePostgres bool   `mapstructure:"use_postgres"`
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	DBName      string `mapstructure:"dbname"`
	SSLMode     string `mapstructure:"sslmode"`
}

func parseDatabaseURL(dbURL string) (DatabaseConfig, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return DatabaseConfig{}, err
	}

	password, _ := u.User.Password()
	port := 5432 // default PostgreSQL port
	if u.Port() != "" {
		fmt.Sscanf(u.Port(), "%d", &port)
	}

	return DatabaseConfig{
		UsePostgres: true,
		Host:        u.Hostname(),
		Port:        port,
		User:        u.User.Username(),
		Password:    password,
		DBName:      strings.TrimPrefix(u.Path, "/"),
		SSLMode:     "disable",
	}, nil
}

// LoadConfig reads the YAML config at path and applies environment overrides.
// A missing file is fine; everything has a default or an env var.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("database.file", "medical_bot.db")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.use_in_memory", false)
	v.SetDefault("database.use_postgres", false)
	v.SetDefault("social.instagram_url", "https://www.instagram.com/sherzod_kineziolog")
	v.SetDefault("social.youtube_url", "https://youtube.com/@kineziomed_clinic")

	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Check for DATABASE_URL environment variable (Heroku-style override).
	if dbURL := v.GetString("DATABASE_URL"); dbURL != "" {
		dbConfig, err := parseDatabaseURL(dbURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
		}
		config.Database = dbConfig
	}

	if token := v.GetString("BOT_TOKEN"); token != "" {
		config.Telegram.Token = token
	}
	if channel := v.GetString("CHANNEL_ID"); channel != "" {
		config.Telegram.ChannelID = channel
	}
	if instagram := v.GetString("INSTAGRAM_URL"); instagram != "" {
		config.Social.InstagramURL = instagram
	}
	if youtube := v.GetString("YOUTUBE_URL"); youtube != "" {
		config.Social.YouTubeURL = youtube
	}

	return &config, nil
}
