package jobpal

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/jobpal/jobpal-bot/jobpal/database"
	"github.com/jobpal/jobpal-bot/jobpal/logger"
)

// LoadConfig reads the TOML file at path, then lets environment variables
// (optionally from a .env file next to the binary) override secrets.
func LoadConfig(path string) (*Config, error) {
	cfg, err := decodeConfig(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStorageConfig is LoadConfig for tools that only talk to the database
// and never log in to Discord.
func LoadStorageConfig(path string) (*Config, error) {
	cfg, err := decodeConfig(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.validateStorage(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err = toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	_ = godotenv.Load()
	cfg.applyEnv()
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: slog.LevelInfo, MaxSizeMB: 20, MaxBackups: 5, MaxAgeDays: 14},
		DB:  DBConfig{Host: "localhost", Port: 5432, PoolSize: 10},
		Schedule: ScheduleConfig{
			Timezone:      "America/Toronto",
			MorningAt:     "09:00",
			AfternoonAt:   "15:00",
			EveningAt:     "21:00",
			WrapUpAt:      "22:00",
			ReminderLimit: 8,
		},
		LLM: LLMConfig{
			BaseURL:     "https://openrouter.ai/api/v1",
			Model:       "mistralai/mistral-7b-instruct",
			FallbackURL: "http://localhost:11434/v1",
			FallbackLLM: "mistral",
			QuestionsPD: 2,
		},
		Giphy: GiphyConfig{BaseURL: "https://api.giphy.com/v1/gifs/random", Tag: "job hunt", Rating: "pg"},
		API:   APIConfig{Addr: ":8080"},
	}
}

type Config struct {
	Log      LogConfig      `toml:"log"`
	Bot      BotConfig      `toml:"bot"`
	DB       DBConfig       `toml:"db"`
	Schedule ScheduleConfig `toml:"schedule"`
	LLM      LLMConfig      `toml:"llm"`
	Giphy    GiphyConfig    `toml:"giphy"`
	Spaces   SpacesConfig   `toml:"spaces"`
	API      APIConfig      `toml:"api"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
	// WrapUpChannels receive the nightly leaderboard post.
	WrapUpChannels []snowflake.ID `toml:"wrapup_channels"`
}

type LogConfig struct {
	Level      slog.Level `toml:"level"`
	AddSource  bool       `toml:"add_source"`
	File       string     `toml:"file"`
	MaxSizeMB  int        `toml:"max_size_mb"`
	MaxBackups int        `toml:"max_backups"`
	MaxAgeDays int        `toml:"max_age_days"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

type ScheduleConfig struct {
	Timezone    string `toml:"timezone"`
	MorningAt   string `toml:"morning_at"`
	AfternoonAt string `toml:"afternoon_at"`
	EveningAt   string `toml:"evening_at"`
	WrapUpAt    string `toml:"wrapup_at"`
	// ReminderLimit bounds concurrent reminder lookups.
	ReminderLimit int64 `toml:"reminder_limit"`
}

type LLMConfig struct {
	BaseURL     string `toml:"base_url"`
	APIKey      string `toml:"api_key"`
	Model       string `toml:"model"`
	FallbackURL string `toml:"fallback_url"`
	FallbackLLM string `toml:"fallback_model"`
	QuestionsPD int    `toml:"questions_per_day"`
}

type GiphyConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Tag     string `toml:"tag"`
	Rating  string `toml:"rating"`
}

type SpacesConfig struct {
	Key      string `toml:"key"`
	Secret   string `toml:"secret"`
	Region   string `toml:"region"`
	Bucket   string `toml:"bucket"`
	Endpoint string `toml:"endpoint"`
	Prefix   string `toml:"prefix"`
}

// Enabled reports whether uploads are configured.
func (s SpacesConfig) Enabled() bool {
	return s.Key != "" && s.Secret != "" && s.Bucket != ""
}

type APIConfig struct {
	Addr    string `toml:"addr"`
	Enabled bool   `toml:"enabled"`
}

func (c *Config) applyEnv() {
	overrides := []struct {
		name   string
		target *string
	}{
		{"DISCORD_TOKEN", &c.Bot.Token},
		{"DB_PASSWORD", &c.DB.Password},
		{"OPENROUTER_API_KEY", &c.LLM.APIKey},
		{"GIPHY_API_KEY", &c.Giphy.APIKey},
		{"SPACES_KEY", &c.Spaces.Key},
		{"SPACES_SECRET", &c.Spaces.Secret},
	}
	for _, o := range overrides {
		if value := strings.TrimSpace(os.Getenv(o.name)); value != "" {
			*o.target = value
		}
	}
}

func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("bot token is required (set bot.token or DISCORD_TOKEN)")
	}
	return c.validateStorage()
}

func (c *Config) validateStorage() error {
	if c.DB.Database == "" {
		return fmt.Errorf("db.database is required")
	}
	return nil
}

// Connection converts the TOML section into the database package's settings.
func (c DBConfig) Connection() database.DBConfig {
	return database.DBConfig{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Database: c.Database,
		PoolSize: c.PoolSize,
	}
}

func (c LogConfig) FileSink() logger.FileConfig {
	return logger.FileConfig{
		Path:       c.File,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
	}
}
