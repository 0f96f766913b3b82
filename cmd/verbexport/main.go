// Command verbexport queries a Notion vocabulary database once and writes
// every page, flattened to plain strings, to verbs.json.
//
// Exit codes: 0 = success, 1 = query or write failure, 2 = configuration error.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/saturnines/notion-verbs/pkg/config"
	"github.com/saturnines/notion-verbs/pkg/core"
	"github.com/saturnines/notion-verbs/pkg/logging"
	"github.com/saturnines/notion-verbs/pkg/output"
	"github.com/saturnines/notion-verbs/pkg/schema"
	"github.com/saturnines/notion-verbs/pkg/transform"
)

// deps are the seams tests replace.
type deps struct {
	Stdout io.Writer
	Stderr io.Writer

	LoadEnv    func() error
	LoadConfig func() (*config.Config, error)

	ConnectorOptions []core.Option
}

func main() {
	os.Exit(run(context.Background(), deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		LoadEnv:    func() error { return godotenv.Load() },
		LoadConfig: config.Load,
	}))
}

func run(ctx context.Context, d deps) int {
	if d.Stdout == nil {
		d.Stdout = io.Discard
	}
	if d.Stderr == nil {
		d.Stderr = io.Discard
	}
	if d.LoadEnv == nil {
		d.LoadEnv = func() error { return nil }
	}
	if d.LoadConfig == nil {
		d.LoadConfig = config.Load
	}

	envErr := d.LoadEnv()

	cfg, err := d.LoadConfig()
	if err != nil {
		logging.New(config.LogConfig{}, d.Stderr).Error("load config", slog.String("error", err.Error()))
		return 2
	}

	logger := logging.New(cfg.Log, d.Stderr)
	if envErr != nil {
		logger.Debug(".env file not loaded", slog.String("error", envErr.Error()))
	}
	logger.Info("configuration loaded",
		slog.Any("notion", cfg.Notion),
		slog.String("output", cfg.OutputPath),
	)

	opts := append([]core.Option{core.WithLogger(logger)}, d.ConnectorOptions...)
	connector, err := core.NewConnector(cfg, opts...)
	if err != nil {
		logger.Error("create connector", slog.String("error", err.Error()))
		return 2
	}

	pages, err := connector.Query(ctx)
	if err != nil {
		logger.Error("query database", slog.String("error", err.Error()))
		return 1
	}

	records := transform.NewFlattener(schema.Verbs()).FlattenAll(pages)

	if err := output.WriteJSON(cfg.OutputPath, records); err != nil {
		logger.Error("write output", slog.String("error", err.Error()))
		return 1
	}

	logger.Info("export finished",
		slog.Int("records", len(records)),
		slog.String("output", cfg.OutputPath),
	)
	fmt.Fprintf(d.Stdout, "✅ Exported %d records to %s\n", len(records), cfg.OutputPath)
	return 0
}
