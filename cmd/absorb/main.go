// SPDX-License-Identifier: MIT

// Command absorb reads a weighted absorbing Markov chain and prints the exact
// probability of ending in each absorbing state.
//
// Input is JSON on stdin (or -in FILE), either an object
//
//	{"weights": [[0,1],[0,0]], "start": 0}
//
// or a bare weight table [[0,1],[0,0]] with the start state taken from
// -start. Weights are non-negative integers of any size.
//
// Output (-format):
//
//	text  "p1 p2 ... pa denominator" on one line
//	json  {"start":0,"absorbing":[1],"numerators":["1"],"denominator":"1"}
//
// Flags fall back to ABSORB_IN, ABSORB_START, ABSORB_FORMAT and
// ABSORB_LOG_LEVEL (debug|info|warn|error). Exit status is 0 on success,
// 1 on invalid input and 2 on usage errors.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/absorb/markov"
	"github.com/lmittmann/tint"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const (
	formatText = "text"
	formatJSON = "json"
)

var errBadWeight = errors.New("weight is not an integer")

// config is the resolved command line.
type config struct {
	in     string
	start  int
	format string
	level  slog.Level
}

// request is the object form of the input.
type request struct {
	Weights [][]json.Number `json:"weights"`
	Start   *int            `json:"start"`
}

// response is the -format json output.
type response struct {
	Start       int      `json:"start"`
	Absorbing   []int    `json:"absorbing"`
	Numerators  []string `json:"numerators"`
	Denominator string   `json:"denominator"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without process globals so it can be driven from tests.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "absorb:", err)
		return exitUsage
	}

	log := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      cfg.level,
		TimeFormat: "15:04:05",
	}))

	src := stdin
	if cfg.in != "" && cfg.in != "-" {
		f, err := os.Open(cfg.in)
		if err != nil {
			log.Error("open input", "path", cfg.in, "err", err)
			return exitError
		}
		defer f.Close()
		src = f
	}

	weights, start, err := decodeInput(src, cfg.start)
	if err != nil {
		log.Error("decode input", "err", err)
		return exitError
	}
	log.Debug("input decoded", "states", len(weights), "start", start)

	res, err := markov.SolveBig(weights, start, markov.WithLogger(log))
	if err != nil {
		log.Error("solve", "err", err)
		return exitError
	}

	if err = encodeResult(stdout, cfg.format, res); err != nil {
		log.Error("write output", "err", err)
		return exitError
	}

	return exitOK
}

// parseFlags resolves flags over their ABSORB_* environment defaults.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	cfg := config{
		in:     os.Getenv("ABSORB_IN"),
		format: envOr("ABSORB_FORMAT", formatText),
	}
	if v := os.Getenv("ABSORB_START"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("ABSORB_START=%q: %w", v, err)
		}
		cfg.start = n
	}
	if err := cfg.level.UnmarshalText([]byte(envOr("ABSORB_LOG_LEVEL", "info"))); err != nil {
		return cfg, fmt.Errorf("ABSORB_LOG_LEVEL: %w", err)
	}

	fs := flag.NewFlagSet("absorb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", cfg.in, "input file (default stdin)")
	fs.IntVar(&cfg.start, "start", cfg.start, "start state when the input has none")
	fs.StringVar(&cfg.format, "format", cfg.format, "output format: text or json")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *verbose {
		cfg.level = slog.LevelDebug
	}
	switch cfg.format {
	case formatText, formatJSON:
	default:
		return cfg, fmt.Errorf("unknown format %q", cfg.format)
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// decodeInput accepts the object form or a bare weight table. A start in the
// object overrides defStart.
func decodeInput(r io.Reader, defStart int) ([][]*big.Int, int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, err
	}
	raw = bytes.TrimSpace(raw)

	var req request
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if len(raw) > 0 && raw[0] == '[' {
		err = dec.Decode(&req.Weights)
	} else {
		dec.DisallowUnknownFields()
		err = dec.Decode(&req)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("json: %w", err)
	}

	weights := make([][]*big.Int, len(req.Weights))
	for i, row := range req.Weights {
		weights[i] = make([]*big.Int, len(row))
		for j, num := range row {
			w, ok := new(big.Int).SetString(num.String(), 10)
			if !ok {
				return nil, 0, fmt.Errorf("weight (%d,%d) = %s: %w", i, j, num, errBadWeight)
			}
			weights[i][j] = w
		}
	}

	start := defStart
	if req.Start != nil {
		start = *req.Start
	}

	return weights, start, nil
}

func encodeResult(w io.Writer, format string, res markov.Result) error {
	if format == formatJSON {
		out := response{
			Start:       res.Start,
			Absorbing:   res.Absorbing,
			Numerators:  make([]string, len(res.Numerators)),
			Denominator: res.Denominator.String(),
		}
		for i, n := range res.Numerators {
			out.Numerators[i] = n.String()
		}
		return json.NewEncoder(w).Encode(out)
	}

	ints := res.Ints()
	parts := make([]string, len(ints))
	for i, n := range ints {
		parts[i] = n.String()
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))

	return err
}
