package jobpal

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jobpal/jobpal-bot/jobpal/database"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("OPENROUTER_API_KEY", "from-env")
	path := writeConfig(t, `
[log]
level = "debug"

[bot]
token = "file-token"
dev_guilds = [123]

[db]
database = "jobpal"
user = "pal"

[schedule]
timezone = "UTC"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Bot.Token != "file-token" {
		t.Errorf("token = %q, want the file value when env is empty", cfg.Bot.Token)
	}
	if cfg.LLM.APIKey != "from-env" {
		t.Errorf("llm api key = %q, want env override", cfg.LLM.APIKey)
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Errorf("log level = %v", cfg.Log.Level)
	}
	if cfg.Schedule.Timezone != "UTC" || cfg.Schedule.WrapUpAt != "22:00" {
		t.Errorf("schedule = %+v, want file timezone and default wrap-up", cfg.Schedule)
	}
	if cfg.LLM.QuestionsPD != 2 || cfg.DB.Port != 5432 {
		t.Errorf("defaults not applied: %+v %+v", cfg.LLM, cfg.DB)
	}
	want := database.DBConfig{Host: "localhost", Port: 5432, User: "pal", Database: "jobpal", PoolSize: 10}
	if got := cfg.DB.Connection(); got != want {
		t.Errorf("Connection() = %+v, want %+v", got, want)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	tests := []struct {
		name string
		body string
	}{
		{name: "missing token", body: "[db]\ndatabase = \"jobpal\"\n"},
		{name: "missing database", body: "[bot]\ntoken = \"x\"\n"},
		{name: "not toml", body: "[bot\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("LoadConfig() expected an error")
			}
		})
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig() on a missing file expected an error")
	}
}

func TestLoadStorageConfig_NoToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	cfg, err := LoadStorageConfig(writeConfig(t, "[db]\ndatabase = \"jobpal\"\n"))
	if err != nil {
		t.Fatalf("LoadStorageConfig() error = %v", err)
	}
	if cfg.DB.Database != "jobpal" {
		t.Errorf("database = %q", cfg.DB.Database)
	}
	if _, err := LoadStorageConfig(writeConfig(t, "[bot]\ntoken = \"x\"\n")); err == nil {
		t.Error("LoadStorageConfig() without a database expected an error")
	}
}
