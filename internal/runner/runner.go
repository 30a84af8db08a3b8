// Package runner executes a hole-free program independently of the
// search, to show what its output continuation looks like past the
// target prefix it was synthesized to match.
package runner

import (
	"bfsynth/internal/program"
	"bfsynth/internal/search"
	"bfsynth/internal/tape"
)

// Result is what a concrete run produced.
type Result struct {
	Outputs []byte
	Steps   uint64
	Halted  bool
}

// Run executes root (no holes) from a zero tape and empty loop stack,
// under an independent step cap and bounded output length. It never
// compares against a target and never expands holes.
func Run(root *program.Node, outputLimit int, stepCap uint64) Result {
	n := search.Node{Root: root, PC: root, Tape: tape.Empty}

	for {
		if n.Outputs.Len() >= outputLimit {
			return Result{Outputs: n.Outputs.Bytes(), Steps: n.Steps, Halted: false}
		}
		if n.Steps >= stepCap {
			return Result{Outputs: n.Outputs.Bytes(), Steps: n.Steps, Halted: false}
		}
		children := search.StepOnce(n, nil)
		if len(children) == 0 {
			return Result{Outputs: n.Outputs.Bytes(), Steps: n.Steps, Halted: true}
		}
		// A concrete pc is never a Hole, so StepOnce's hole-expansion path
		// is unreachable here and exactly one successor is produced.
		n = children[0]
	}
}
