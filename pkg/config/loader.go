package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/saturnines/notion-verbs/pkg/errors"
)

// ValidationError describes one invalid config value
type ValidationError struct {
	Field   string
	Message string
}

// Returns the string representation of validation error
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Load reads the configuration from the process environment.
// Both Notion values must be present and non-empty; nothing else is required.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "read env")
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "validate")
	}

	return &cfg, nil
}

// SetDefaults fills values the environment does not provide
func (c *Config) SetDefaults() {
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks that all required fields are present
func (c *Config) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(c.Notion.Token) == "" {
		errs = append(errs, ValidationError{Field: EnvToken, Message: "is required"})
	}
	if strings.TrimSpace(c.Notion.DatabaseID) == "" {
		errs = append(errs, ValidationError{Field: EnvDatabaseID, Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
