package config

import (
	"fmt"
	"log/slog"
)

// Environment variable names read by Load.
const (
	EnvToken      = "NOTION_TOKEN"
	EnvDatabaseID = "NOTION_DATABASE_ID"
)

// DefaultOutputPath is where the export lands when nothing else is set.
const DefaultOutputPath = "verbs.json"

// Config represents the full config for one export run
type Config struct {
	Notion     NotionConfig `yaml:"notion"`
	Log        LogConfig    `yaml:"log"`
	OutputPath string       `yaml:"-"` // Not environment-configurable
}

// NotionConfig holds the two required credentials
type NotionConfig struct {
	Token      string `yaml:"token"       env:"NOTION_TOKEN"`       // Required: integration token
	DatabaseID string `yaml:"database_id" env:"NOTION_DATABASE_ID"` // Required: database to query
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// String returns a representation safe for logs
func (n NotionConfig) String() string {
	return fmt.Sprintf("NotionConfig(database_id: %s, token: [REDACTED])", n.DatabaseID)
}

// LogValue keeps the token out of structured logs.
func (n NotionConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("database_id", n.DatabaseID),
		slog.String("token", "[REDACTED]"),
	)
}
