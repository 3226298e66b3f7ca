package command

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/kvstore-go/pkg/kvstore"
)

// GetCommand returns the get command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Look up a key",
		ArgsUsage: "KEY",
		Action:    getAction,
	}
}

func getAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("usage: get KEY")
	}

	v, ok := GetStore(c).Get(c.Args().First())
	if !ok {
		fmt.Fprintln(c.App.Writer, "(nil)")
		return nil
	}
	fmt.Fprintln(c.App.Writer, v)
	return nil
}

// SetCommand returns the set command.
func SetCommand() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Store a value",
		ArgsUsage: "KEY VALUE",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "ttl",
				Aliases: []string{"t"},
				Usage:   "Entry TTL (e.g., 30s, 5m); omit for the configured default",
			},
		},
		Action: setAction,
	}
}

func setAction(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("usage: set KEY VALUE")
	}

	ttl := GetConfig(c).TTL.Default
	if c.IsSet("ttl") {
		ttl = c.Duration("ttl")
	}
	if ttl < 0 {
		return fmt.Errorf("invalid ttl %v: must not be negative", ttl)
	}

	GetStore(c).Set(c.Args().Get(0), c.Args().Get(1), ttl)
	fmt.Fprintln(c.App.Writer, "OK")
	return nil
}

// DelCommand returns the del command.
func DelCommand() *cli.Command {
	return &cli.Command{
		Name:      "del",
		Usage:     "Remove a key",
		ArgsUsage: "KEY",
		Action:    delAction,
	}
}

func delAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("usage: del KEY")
	}

	if GetStore(c).Remove(c.Args().First()) {
		fmt.Fprintln(c.App.Writer, "removed")
	} else {
		fmt.Fprintln(c.App.Writer, "not found")
	}
	return nil
}

// ScanCommand returns the scan command.
func ScanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "List entries with keys >= START in key order",
		ArgsUsage: "[START] [COUNT]",
		Action:    scanAction,
	}
}

func scanAction(c *cli.Context) error {
	if c.Args().Len() > 2 {
		return fmt.Errorf("usage: scan [START] [COUNT]")
	}

	start := c.Args().Get(0)
	count := GetConfig(c).Scan.Count
	if c.Args().Len() == 2 {
		n, err := strconv.Atoi(c.Args().Get(1))
		if err != nil || n < 0 {
			return fmt.Errorf("invalid count %q", c.Args().Get(1))
		}
		count = n
	}

	pairs := GetStore(c).GetManySorted(start, count)
	if len(pairs) == 0 {
		fmt.Fprintln(c.App.Writer, "(empty)")
		return nil
	}
	return newFormatter(c).Format(c.App.Writer, pairs)
}

// PurgeCommand returns the purge command.
func PurgeCommand() *cli.Command {
	return &cli.Command{
		Name:   "purge",
		Usage:  "Remove all expired entries",
		Action: purgeAction,
	}
}

func purgeAction(c *cli.Context) error {
	store := GetStore(c)

	var reclaimed []kvstore.Pair
	for {
		p, ok := store.RemoveOneExpiredEntry()
		if !ok {
			break
		}
		reclaimed = append(reclaimed, p)
	}

	if len(reclaimed) == 0 {
		fmt.Fprintln(c.App.Writer, "nothing expired")
		return nil
	}
	return newFormatter(c).Format(c.App.Writer, reclaimed)
}

// StatsCommand returns the stats command.
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "Show engine counters",
		Action: statsAction,
	}
}

func statsAction(c *cli.Context) error {
	return newFormatter(c).Format(c.App.Writer, GetStore(c).Stats())
}
