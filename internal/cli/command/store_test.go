package command

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yndnr/kvstore-go/pkg/kvstore"
)

const sampleSeed = `entries:
  - key: alpha
    value: "1"
  - key: bravo
    value: "2"
  - key: delta
    value: "3"
`

const expiringSeed = `entries:
  - key: dead1
    value: x
    ttl: 1ns
  - key: dead2
    value: y
    ttl: 1ns
  - key: live
    value: z
`

func TestGet_FromSeed(t *testing.T) {
	seedPath := writeSeed(t, sampleSeed)

	out, err := runApp(t, "--seed", seedPath, "get", "bravo")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "2\n" {
		t.Errorf("output = %q, want %q", out, "2\n")
	}
}

func TestGet_Missing(t *testing.T) {
	out, err := runApp(t, "get", "nope")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "(nil)\n" {
		t.Errorf("output = %q, want %q", out, "(nil)\n")
	}
}

func TestGet_NoArgs(t *testing.T) {
	if _, err := runApp(t, "get"); err == nil {
		t.Fatal("get without args should fail")
	}
}

func TestGet_Expired(t *testing.T) {
	seedPath := writeSeed(t, expiringSeed)

	out, err := runApp(t, "--seed", seedPath, "get", "dead1")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "(nil)\n" {
		t.Errorf("output = %q, want %q", out, "(nil)\n")
	}
}

func TestSet_PrintsOK(t *testing.T) {
	out, err := runApp(t, "set", "k", "v")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "OK\n" {
		t.Errorf("output = %q, want %q", out, "OK\n")
	}
}

func TestSet_NegativeTTL(t *testing.T) {
	if _, err := runApp(t, "set", "--ttl", "-5s", "k", "v"); err == nil {
		t.Fatal("negative ttl should fail")
	}
}

func TestDel(t *testing.T) {
	seedPath := writeSeed(t, sampleSeed)

	out, err := runApp(t, "--seed", seedPath, "del", "alpha")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "removed\n" {
		t.Errorf("output = %q, want %q", out, "removed\n")
	}
}

func TestDel_Missing(t *testing.T) {
	out, err := runApp(t, "del", "nope")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "not found\n" {
		t.Errorf("output = %q, want %q", out, "not found\n")
	}
}

func TestScan_Ordered(t *testing.T) {
	seedPath := writeSeed(t, sampleSeed)

	out, err := runApp(t, "--seed", seedPath, "scan")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	ia := strings.Index(out, "alpha")
	ib := strings.Index(out, "bravo")
	id := strings.Index(out, "delta")
	if ia < 0 || ib < 0 || id < 0 {
		t.Fatalf("scan missing keys:\n%s", out)
	}
	if !(ia < ib && ib < id) {
		t.Errorf("scan output not in key order:\n%s", out)
	}
}

func TestScan_StartAndCount(t *testing.T) {
	seedPath := writeSeed(t, sampleSeed)

	out, err := runApp(t, "--seed", seedPath, "scan", "bravo", "1")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "bravo") {
		t.Errorf("scan should include the inclusive start key:\n%s", out)
	}
	if strings.Contains(out, "delta") {
		t.Errorf("scan returned more than count entries:\n%s", out)
	}
}

func TestScan_SkipsExpired(t *testing.T) {
	seedPath := writeSeed(t, expiringSeed)

	out, err := runApp(t, "--seed", seedPath, "scan")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(out, "dead1") || strings.Contains(out, "dead2") {
		t.Errorf("scan returned expired entries:\n%s", out)
	}
	if !strings.Contains(out, "live") {
		t.Errorf("scan missing live entry:\n%s", out)
	}
}

func TestScan_Empty(t *testing.T) {
	out, err := runApp(t, "scan")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "(empty)\n" {
		t.Errorf("output = %q, want %q", out, "(empty)\n")
	}
}

func TestScan_InvalidCount(t *testing.T) {
	seedPath := writeSeed(t, sampleSeed)

	if _, err := runApp(t, "--seed", seedPath, "scan", "alpha", "many"); err == nil {
		t.Fatal("non-numeric count should fail")
	}
}

func TestScan_JSONOutput(t *testing.T) {
	seedPath := writeSeed(t, sampleSeed)

	out, err := runApp(t, "--seed", seedPath, "--output", "json", "scan")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var pairs []kvstore.Pair
	if err := json.Unmarshal([]byte(out), &pairs); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}
	if pairs[0].Key != "alpha" || pairs[0].Value != "1" {
		t.Errorf("pairs[0] = %+v, want alpha/1", pairs[0])
	}
}

func TestPurge_ReclaimsExpired(t *testing.T) {
	seedPath := writeSeed(t, expiringSeed)

	out, err := runApp(t, "--seed", seedPath, "purge")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "dead1") || !strings.Contains(out, "dead2") {
		t.Errorf("purge output missing reclaimed keys:\n%s", out)
	}
	if strings.Contains(out, "live") {
		t.Errorf("purge removed a live entry:\n%s", out)
	}
}

func TestPurge_NothingExpired(t *testing.T) {
	seedPath := writeSeed(t, sampleSeed)

	out, err := runApp(t, "--seed", seedPath, "purge")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "nothing expired\n" {
		t.Errorf("output = %q, want %q", out, "nothing expired\n")
	}
}

func TestStats(t *testing.T) {
	seedPath := writeSeed(t, sampleSeed)

	out, err := runApp(t, "--seed", seedPath, "stats")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "KEYS") {
		t.Errorf("stats output missing key count field:\n%s", out)
	}
	if !strings.Contains(out, "3") {
		t.Errorf("stats output missing key count value:\n%s", out)
	}
}

func TestREPL_EndToEnd(t *testing.T) {
	historyPath := filepath.Join(t.TempDir(), "history")

	app := App()
	var buf strings.Builder
	app.Writer = &buf
	app.Reader = strings.NewReader("set a 1\nget a\nexit\n")

	err := app.Run([]string{"kvstore-cli", "repl", "--history", historyPath})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "OK") {
		t.Errorf("repl set did not confirm:\n%s", out)
	}
	if !strings.Contains(out, "1") {
		t.Errorf("repl get did not print value:\n%s", out)
	}

	if _, err := os.Stat(historyPath); err != nil {
		t.Errorf("history file not saved: %v", err)
	}
}
