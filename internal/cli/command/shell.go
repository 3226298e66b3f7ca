package command

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/kvstore-go/internal/cli/repl"
	"github.com/yndnr/kvstore-go/internal/infra/shutdown"
	"github.com/yndnr/kvstore-go/internal/telemetry/logger"
)

// REPLCommand returns the repl command.
func REPLCommand() *cli.Command {
	return &cli.Command{
		Name:    "repl",
		Aliases: []string{"shell"},
		Usage:   "Start an interactive session over one store instance",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "history",
				Usage: "Command history file (default: ~/.kvstore/history)",
			},
		},
		Action: replAction,
	}
}

func replAction(c *cli.Context) error {
	cfg := GetConfig(c)

	hist := repl.NewHistory()
	if path := c.String("history"); path != "" {
		hist = repl.NewHistoryFile(path)
	}
	if err := hist.Load(); err != nil {
		logger.Warn("could not load history", "error", err)
	}

	// Save history on Ctrl-C as well as on a clean exit.
	handler := shutdown.NewHandler(5 * time.Second)
	handler.OnShutdown(func(context.Context) error {
		if err := hist.Save(); err != nil {
			logger.Warn("could not save history", "error", err)
		}
		return nil
	})
	go handler.Wait()

	r := repl.New(GetStore(c),
		repl.WithIO(c.App.Reader, c.App.Writer),
		repl.WithFormatter(newFormatter(c)),
		repl.WithDefaultTTL(cfg.TTL.Default),
		repl.WithScanCount(cfg.Scan.Count),
		repl.WithHistory(hist),
	)

	err := r.Run()

	handler.Trigger()
	<-handler.Done()
	return err
}
