package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"bfsynth/internal/apperrors"
)

// args is the parsed, validated command line. Only target, beta, gamma,
// maxSteps, demoSteps, and extra feed the search and runner; the
// journal/watch/nonInteractive/maxSolutions fields configure ambient
// reporting and never reach the search engine itself.
type args struct {
	target         []byte
	extra          uint
	beta           float64
	gamma          float64
	maxSteps       uint64
	demoSteps      uint64
	journalPath    string
	watchAddr      string
	nonInteractive bool
	maxSolutions   uint
}

func parseArgs(argv []string) (args, error) {
	fs := flag.NewFlagSet("bfsynth", flag.ContinueOnError)

	hexFlag := fs.String("hex", "", "target bytes as hex, whitespace ignored")
	fs.StringVar(hexFlag, "x", "", "shorthand for --hex")

	var extra uint
	fs.UintVar(&extra, "extra", 64, "extrapolation length past the target")
	fs.UintVar(&extra, "e", 64, "shorthand for --extra")

	var beta, gamma float64
	fs.Float64Var(&beta, "beta", 1.0, "beta coefficient in the score")
	fs.Float64Var(&beta, "b", 1.0, "shorthand for --beta")
	fs.Float64Var(&gamma, "gamma", 1.0, "gamma coefficient in the score")
	fs.Float64Var(&gamma, "g", 1.0, "shorthand for --gamma")

	var maxSteps, demoSteps uint64
	fs.Uint64Var(&maxSteps, "max-steps", 1_000_000, "search-side step cap per node")
	fs.Uint64Var(&demoSteps, "demo-steps", 1_000_000, "concrete-runner step cap")

	var journalPath, watchAddr string
	fs.StringVar(&journalPath, "journal", "", "persist reported solutions to a SQLite file at this path")
	fs.StringVar(&watchAddr, "watch", "", "serve live search-progress snapshots over WebSocket at this address")

	var nonInteractive bool
	fs.BoolVar(&nonInteractive, "non-interactive", false, "never prompt; report every solution until exhaustion or --max-solutions")

	var maxSolutions uint
	fs.UintVar(&maxSolutions, "max-solutions", 0, "stop after this many solutions (0 = unbounded)")

	if err := fs.Parse(argv); err != nil {
		return args{}, apperrors.NewValidation("%s", err)
	}

	positional := fs.Args()

	var target []byte
	switch {
	case *hexFlag != "" && len(positional) > 0:
		return args{}, apperrors.NewValidation("provide either positional decimal bytes or --hex, not both")
	case *hexFlag != "":
		decoded, err := parseHexBytes(*hexFlag)
		if err != nil {
			return args{}, apperrors.NewValidation("invalid hex input: %s", err)
		}
		target = decoded
	default:
		decoded, err := parseDecimalBytes(positional)
		if err != nil {
			return args{}, apperrors.NewValidation("invalid target bytes: %s", err)
		}
		target = decoded
	}

	if len(target) == 0 {
		return args{}, apperrors.NewValidation("target sequence must not be empty; provide decimal bytes (0..=255) or --hex")
	}

	return args{
		target:         target,
		extra:          extra,
		beta:           beta,
		gamma:          gamma,
		maxSteps:       maxSteps,
		demoSteps:      demoSteps,
		journalPath:    journalPath,
		watchAddr:      watchAddr,
		nonInteractive: nonInteractive,
		maxSolutions:   maxSolutions,
	}, nil
}

// parseHexBytes decodes a hex string, ignoring whitespace, requiring an
// even digit count.
func parseHexBytes(s string) ([]byte, error) {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(" \t\r\n", r) {
			continue
		}
		b.WriteRune(r)
	}
	filtered := b.String()
	if len(filtered)%2 != 0 {
		return nil, fmt.Errorf("hex string must have an even number of hex digits")
	}
	return hex.DecodeString(filtered)
}

// parseDecimalBytes accepts either comma-separated or space-separated
// decimal byte tokens. Space-separated bytes arrive as separate
// command-line arguments; each argument is split here on commas only, so
// a single argument holding spaces between bytes is rejected.
func parseDecimalBytes(tokens []string) ([]byte, error) {
	var fields []string
	for _, t := range tokens {
		fields = append(fields, strings.Split(t, ",")...)
	}
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a decimal byte: %w", f, err)
		}
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%d is out of range 0..=255", v)
		}
		out = append(out, byte(v))
	}
	return out, nil
}
