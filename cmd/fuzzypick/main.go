package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/galib45/fuzzypicker"
	"github.com/galib45/fuzzypicker/internal/config"
	"github.com/galib45/fuzzypicker/internal/logging"
	"github.com/galib45/fuzzypicker/internal/logging/events"
	"github.com/galib45/fuzzypicker/internal/match"
	"golang.org/x/term"
)

func main() {
	runtimeCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	choice, selected, err := run(runtimeCfg)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !selected {
		os.Exit(1)
	}
	fmt.Println(choice)
}

func run(cfg config.Config) (string, bool, error) {
	candidates, fromStdin, err := collectCandidates(cfg.Args)
	if err != nil {
		return "", false, err
	}
	if len(candidates) == 0 {
		return "", false, fmt.Errorf("no candidates to pick from")
	}

	opts := []fuzzypicker.Option{
		fuzzypicker.WithScorer(scorerFor(cfg.Ranker)),
	}
	if cfg.Height > 0 {
		opts = append(opts, fuzzypicker.WithHeight(cfg.Height))
	}
	if cfg.Logging.Trace {
		opts = append(opts, fuzzypicker.WithTrace(true))
	}

	// Candidates piped on stdin leave the keyboard on /dev/tty.
	if fromStdin {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return "", false, fmt.Errorf("stdin is not a terminal and /dev/tty is unavailable: %w", err)
		}
		defer tty.Close()
		opts = append(opts, fuzzypicker.WithInput(tty))
	}

	picker := fuzzypicker.NewStrings(candidates, opts...)
	return picker.Pick()
}

// collectCandidates reads items from positional arguments, or from stdin
// when no arguments are given and stdin is a pipe.
func collectCandidates(args []string) ([]string, bool, error) {
	if len(args) > 0 {
		return args, false, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, false, fmt.Errorf("no arguments given and stdin is a terminal; pipe candidates in or pass them as arguments")
	}
	lines, err := readLines(os.Stdin)
	if err != nil {
		return nil, false, err
	}
	return lines, true, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading candidates: %w", err)
	}
	return lines, nil
}

func scorerFor(name string) match.Scorer {
	if name == config.RankerDistance {
		return match.RankScorer{}
	}
	return match.SkimScorer{}
}

func traceStartup(cfg config.Config) {
	events.Session.Startup(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"ranker": cfg.Ranker,
		"height": cfg.Height,
		"trace":  cfg.Logging.Trace,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() []ttyProbeResult {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return results
}
