// Command bfsynth searches the space of minimal tape-machine programs for
// one that emits a given target byte sequence, and extrapolates its
// output past the target.
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"

	"bfsynth/internal/apperrors"
	"bfsynth/internal/journal"
	"bfsynth/internal/liveserver"
	"bfsynth/internal/runner"
	"bfsynth/internal/search"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	a, err := parseArgs(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	sessionID := uuid.New()
	nonInteractive := a.nonInteractive || !isatty.IsTerminal(os.Stdout.Fd())

	var jr *journal.Journal
	if a.journalPath != "" {
		jr, err = journal.Open(a.journalPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, apperrors.Wrap(err, "opening journal"))
			return 2
		}
		defer jr.Close()
		jr.RecordSession(sessionID, hex.EncodeToString(a.target), a.beta, a.gamma)
	}

	var watchSrv *liveserver.Server
	if a.watchAddr != "" {
		watchSrv = liveserver.NewServer(a.watchAddr)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := watchSrv.Serve(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "liveserver: %v\n", err)
			}
		}()
	}

	fmt.Printf("Target length: %d bytes\n", len(a.target))
	fmt.Printf("Scoring: score = correct - %.3f * min_len - %.3f * log2(steps + 1)\n", a.beta, a.gamma)
	if !nonInteractive {
		fmt.Println("Press Ctrl+C to stop at any time.")
	}

	engine := search.New(a.target, search.Config{Beta: a.beta, Gamma: a.gamma, MaxSteps: a.maxSteps})
	if watchSrv != nil {
		engine.AddObserver(watchObserver{srv: watchSrv})
	}

	stdin := bufio.NewScanner(os.Stdin)
	solutionIndex := 0

	for {
		outcome := engine.Next()
		if outcome.Exhausted {
			fmt.Println("Search space exhausted without finding a solution.")
			return 0
		}

		sol := outcome.Solution
		res := runner.Run(sol.Root, len(a.target)+int(a.extra), a.demoSteps)
		solutionIndex++

		printSolution(solutionIndex, minLenOf(sol), sol.Text, res)
		if os.Getenv("BFSYNTH_DEBUG_AST") != "" {
			fmt.Printf("%# v\n", pretty.Formatter(sol.Root))
		}

		if jr != nil {
			jr.RecordSolution(sessionID, solutionIndex, sol.Text, minLenOf(sol), res.Outputs, res.Steps, res.Halted)
		}

		if a.maxSolutions > 0 && uint(solutionIndex) >= a.maxSolutions {
			return 0
		}

		if nonInteractive {
			continue
		}

		fmt.Println()
		fmt.Print("Press Enter to search for the next different solution (or 'q' + Enter to quit): ")
		if !stdin.Scan() {
			return 0
		}
		if strings.EqualFold(strings.TrimSpace(stdin.Text()), "q") {
			return 0
		}
	}
}

func minLenOf(s *search.Solution) int {
	return s.Root.MinLen
}

// watchObserver adapts (*liveserver.Server).Publish to search.Observer
// without this package importing liveserver's concrete type into
// search's dependency surface.
type watchObserver struct {
	srv *liveserver.Server
}

func (w watchObserver) Publish(snap search.Snapshot) {
	w.srv.Publish(snap)
}
