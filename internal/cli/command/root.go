package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/kvstore-go/internal/cli/config"
	"github.com/yndnr/kvstore-go/internal/cli/output"
	"github.com/yndnr/kvstore-go/internal/infra/buildinfo"
	"github.com/yndnr/kvstore-go/internal/storage/seed"
	"github.com/yndnr/kvstore-go/internal/telemetry/logger"
	"github.com/yndnr/kvstore-go/pkg/clock"
	"github.com/yndnr/kvstore-go/pkg/kvstore"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "kvstore-cli",
		Usage:   "In-memory ordered key-value store with per-entry TTL",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			GetCommand(),
			SetCommand(),
			DelCommand(),
			ScanCommand(),
			PurgeCommand(),
			StatsCommand(),
			REPLCommand(),
		},
		Before: setup,
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to config file (default: ~/.kvstore/cli.yaml)",
			EnvVars: []string{"KVSTORE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "seed",
			Aliases: []string{"s"},
			Usage:   "YAML seed file loaded into the store on startup",
			EnvVars: []string{"KVSTORE_SEED"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:  "no-headers",
			Usage: "Omit headers in table output",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level: debug, info, warn, error",
			EnvVars: []string{"KVSTORE_LOG_LEVEL"},
		},
	}
}

// setup loads configuration and builds the store for this invocation.
// Flags override the config file, which overrides defaults.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("seed") {
		cfg.Seed = c.String("seed")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}

	logger.SetDefault(logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}))

	var entries []kvstore.Entry
	if cfg.Seed != "" {
		entries, err = seed.Load(cfg.Seed)
		if err != nil {
			return err
		}
		logger.Debug("seed loaded", "path", cfg.Seed, "entries", len(entries))
	}

	store := kvstore.New(entries, clock.System())

	c.App.Metadata["store"] = store
	c.App.Metadata["config"] = cfg
	return nil
}

// GetStore retrieves the store from the app metadata.
func GetStore(c *cli.Context) *kvstore.Store {
	if s, ok := c.App.Metadata["store"].(*kvstore.Store); ok {
		return s
	}
	return nil
}

// GetConfig retrieves the loaded configuration from the app metadata.
func GetConfig(c *cli.Context) *config.CLIConfig {
	if cfg, ok := c.App.Metadata["config"].(*config.CLIConfig); ok {
		return cfg
	}
	return config.Default()
}

// newFormatter builds the output formatter selected by config and flags.
func newFormatter(c *cli.Context) output.Formatter {
	switch output.Format(GetConfig(c).Output) {
	case output.FormatJSON:
		return &output.JSONFormatter{}
	case output.FormatYAML:
		return &output.YAMLFormatter{}
	default:
		return &output.TableFormatter{NoHeaders: c.Bool("no-headers")}
	}
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
