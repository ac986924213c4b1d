package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultGPTURL is the public YandexGPT completion endpoint
const DefaultGPTURL = "https://llm.api.cloud.yandex.net/foundationModels/v1/completion"

// Config holds all application configuration
type Config struct {
	BotToken     string
	AdminIDs     []int64
	PersonasFile string
	GPT          GPTConfig
	Database     DatabaseConfig
}

// GPTConfig holds YandexGPT API settings
type GPTConfig struct {
	APIKey   string
	FolderID string
	URL      string
	Model    string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		PersonasFile: getEnv("PERSONAS_FILE", "personas.yml"),
		GPT: GPTConfig{
			APIKey:   os.Getenv("YANDEX_API_KEY"),
			FolderID: os.Getenv("YANDEX_FOLDER_ID"),
			URL:      getEnv("YANDEX_GPT_URL", DefaultGPTURL),
			Model:    getEnv("YANDEX_GPT_MODEL", "yandexgpt-lite"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "cncbot"),
			User:     getEnv("DB_USER", "cncbot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	admins, err := parseAdminIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, err
	}
	cfg.AdminIDs = admins

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.GPT.APIKey == "" {
		return nil, fmt.Errorf("YANDEX_API_KEY is required")
	}
	if cfg.GPT.FolderID == "" {
		return nil, fmt.Errorf("YANDEX_FOLDER_ID is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// IsAdmin reports whether the id may use the admin commands.
// An empty admin list leaves them open, matching the original deployment.
func (c *Config) IsAdmin(id int64) bool {
	if len(c.AdminIDs) == 0 {
		return true
	}
	for _, admin := range c.AdminIDs {
		if admin == id {
			return true
		}
	}
	return false
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func parseAdminIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_IDS entry %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
