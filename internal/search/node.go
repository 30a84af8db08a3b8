// Package search implements the best-first frontier over (partial
// program, interpreter continuation) pairs: it grows programs one hole
// at a time, stepping the interpreter as it goes, and orders the
// resulting frontier by a scoring heuristic.
package search

import (
	"bfsynth/internal/program"
	"bfsynth/internal/tape"
)

// LoopFrame is a loop-stack entry. It stores ids, not pointers: the
// interpreter resolves them against the current root via
// program.FindByID, because a hole expanded deep below changes the
// identity of every node on the path back up to the loop.
type LoopFrame struct {
	BodyID int64
	RestID int64
}

// Node is one state in the search: a partial program paired with an
// interpreter continuation. Nodes are created once and thereafter only by
// functional update. A successor shares as much structure as possible
// with its parent.
type Node struct {
	Root      *program.Node
	PC        *program.Node
	LoopStack []LoopFrame // immutable once built; successors get a fresh slice only when it changes
	DP        int64
	Tape      tape.Tape
	Steps     uint64
	Outputs   tape.Output
	Correct   int
	NextID    int64
}

// Initial returns the start node: root = a single hole, pc = that hole,
// NextID = 1, everything else zero.
func Initial() Node {
	root := program.NewHole(0)
	return Node{
		Root:   root,
		PC:     root,
		NextID: 1,
	}
}

// pushLoop returns a copy of n.LoopStack with frame appended, without
// mutating n's backing array.
func (n Node) pushLoop(frame LoopFrame) []LoopFrame {
	out := make([]LoopFrame, len(n.LoopStack)+1)
	copy(out, n.LoopStack)
	out[len(n.LoopStack)] = frame
	return out
}

// popLoop returns n.LoopStack with its top frame removed.
func (n Node) popLoop() []LoopFrame {
	return n.LoopStack[:len(n.LoopStack)-1]
}

// top returns the innermost active loop frame. Caller must ensure the
// stack is non-empty.
func (n Node) top() LoopFrame {
	return n.LoopStack[len(n.LoopStack)-1]
}
