package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yndnr/kvstore-go/internal/cli/output"
	"github.com/yndnr/kvstore-go/pkg/kvstore"
)

// REPL represents the Read-Eval-Print Loop over one store instance.
//
// All store access happens on the loop's goroutine, which satisfies
// the engine's single-threaded contract.
type REPL struct {
	store     *kvstore.Store
	formatter output.Formatter

	defaultTTL time.Duration
	scanCount  int

	input     io.Reader
	output    io.Writer
	completer *Completer
	history   *History
}

// Option configures the REPL.
type Option func(*REPL)

// WithIO sets the input reader and output writer.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
	}
}

// WithFormatter sets the formatter for scan and stats output.
func WithFormatter(f output.Formatter) Option {
	return func(r *REPL) {
		r.formatter = f
	}
}

// WithDefaultTTL sets the TTL applied by `set` without a ttl argument.
func WithDefaultTTL(d time.Duration) Option {
	return func(r *REPL) {
		r.defaultTTL = d
	}
}

// WithScanCount sets the default entry limit for `scan`.
func WithScanCount(n int) Option {
	return func(r *REPL) {
		r.scanCount = n
	}
}

// WithHistory sets the command history.
func WithHistory(h *History) Option {
	return func(r *REPL) {
		r.history = h
	}
}

// New creates a new REPL bound to the given store.
func New(store *kvstore.Store, opts ...Option) *REPL {
	r := &REPL{
		store:     store,
		formatter: &output.TableFormatter{},
		scanCount: 20,
		input:     os.Stdin,
		output:    os.Stdout,
		completer: NewCompleter(),
		history:   NewHistory(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// History returns the REPL's command history.
func (r *REPL) History() *History {
	return r.history
}

// Run starts the REPL loop. It returns on EOF or `exit`.
func (r *REPL) Run() error {
	reader := bufio.NewReader(r.input)

	for {
		fmt.Fprint(r.output, "kvstore> ")

		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.history.Add(line)

		if line == "exit" || line == "quit" {
			return nil
		}

		if err := r.Execute(line); err != nil {
			fmt.Fprintf(r.output, "error: %v\n", err)
		}
	}
}

// Execute parses and runs a single REPL command line.
func (r *REPL) Execute(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "get":
		return r.get(args[1:])
	case "set":
		return r.set(args[1:])
	case "del":
		return r.del(args[1:])
	case "scan":
		return r.scan(args[1:])
	case "purge":
		return r.purge()
	case "stats":
		return r.formatter.Format(r.output, r.store.Stats())
	case "help":
		r.printHelp()
		return nil
	default:
		return fmt.Errorf("unknown command %q (try: help)", args[0])
	}
}

func (r *REPL) get(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get KEY")
	}

	v, ok := r.store.Get(args[0])
	if !ok {
		fmt.Fprintln(r.output, "(nil)")
		return nil
	}
	fmt.Fprintln(r.output, v)
	return nil
}

func (r *REPL) set(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: set KEY VALUE [TTL]")
	}

	ttl := r.defaultTTL
	if len(args) == 3 {
		d, err := time.ParseDuration(args[2])
		if err != nil {
			return fmt.Errorf("invalid ttl %q: %w", args[2], err)
		}
		if d < 0 {
			return fmt.Errorf("invalid ttl %q: must not be negative", args[2])
		}
		ttl = d
	}

	r.store.Set(args[0], args[1], ttl)
	fmt.Fprintln(r.output, "OK")
	return nil
}

func (r *REPL) del(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: del KEY")
	}

	if r.store.Remove(args[0]) {
		fmt.Fprintln(r.output, "removed")
	} else {
		fmt.Fprintln(r.output, "not found")
	}
	return nil
}

func (r *REPL) scan(args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("usage: scan [START] [COUNT]")
	}

	start := ""
	count := r.scanCount
	if len(args) >= 1 {
		start = args[0]
	}
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid count %q", args[1])
		}
		count = n
	}

	pairs := r.store.GetManySorted(start, count)
	if len(pairs) == 0 {
		fmt.Fprintln(r.output, "(empty)")
		return nil
	}
	return r.formatter.Format(r.output, pairs)
}

// purge drains all currently expired entries, one reclamation per
// iteration, and prints what was removed.
func (r *REPL) purge() error {
	var reclaimed []kvstore.Pair
	for {
		p, ok := r.store.RemoveOneExpiredEntry()
		if !ok {
			break
		}
		reclaimed = append(reclaimed, p)
	}

	if len(reclaimed) == 0 {
		fmt.Fprintln(r.output, "nothing expired")
		return nil
	}
	return r.formatter.Format(r.output, reclaimed)
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.output, `Commands:
  get KEY              look up a key
  set KEY VALUE [TTL]  store a value (TTL like 30s, 5m; omit for default)
  del KEY              remove a key
  scan [START] [COUNT] list entries with keys >= START in order
  purge                remove all expired entries
  stats                show engine counters
  help                 show this help
  exit                 leave the REPL
`)
}
