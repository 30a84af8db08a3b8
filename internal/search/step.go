package search

import "bfsynth/internal/program"

// Target is the byte sequence T the search is trying to produce as an
// output prefix.
type Target []byte

// StepOnce advances n by exactly one interpreter step, expanding a hole
// first if n.PC is one. It returns the zero or more successor nodes
// produced, already past the output-mismatch and ','-input pruning
// rules. Premature-halt pruning, max_steps, and score finiteness are
// the caller's responsibility: a halted successor (including the Empty
// branch of a hole expansion) is returned as is.
func StepOnce(n Node, target Target) []Node {
	switch n.PC.Kind {
	case program.KindHole:
		return expandHole(n, target)
	default:
		if s, ok := execKnownStep(n, target); ok {
			return []Node{s}
		}
		return nil
	}
}

// expandHole branches into every legal grammar production for the hole
// at n.PC, then takes one real step inside each branch, except the Empty
// branch, which neither advances nor emits.
func expandHole(n Node, target Target) []Node {
	h := n.PC.ID
	var out []Node

	// 1. Empty branch: "terminate the program here". No step taken; the
	// caller prunes this as a premature halt unless it already completes T.
	{
		replacement := program.NewEmpty(h)
		newRoot, err := program.ReplaceHole(n.Root, h, replacement)
		if err == nil {
			child := n
			child.Root = newRoot
			child.PC = replacement
			out = append(out, child)
		}
	}

	// 2. Instruction branches: Instr(i, Hole(next_id)).
	for _, i := range program.Instrs {
		newHoleID := n.NextID
		rest := program.NewHole(newHoleID)
		replacement := program.NewInstr(h, i, rest)
		newRoot, err := program.ReplaceHole(n.Root, h, replacement)
		if err != nil {
			continue
		}
		child := n
		child.Root = newRoot
		child.PC = replacement
		child.NextID = newHoleID + 1
		if s, ok := execKnownStep(child, target); ok {
			out = append(out, s)
		}
	}

	// 3. Loop branch: Loop(Hole(hb), Hole(hn)).
	{
		hb := n.NextID
		hn := n.NextID + 1
		body := program.NewHole(hb)
		rest := program.NewHole(hn)
		replacement := program.NewLoop(h, body, rest)
		newRoot, err := program.ReplaceHole(n.Root, h, replacement)
		if err == nil {
			child := n
			child.Root = newRoot
			child.PC = replacement
			child.NextID = hn + 1
			if s, ok := execKnownStep(child, target); ok {
				out = append(out, s)
			}
		}
	}

	return out
}

// execKnownStep executes one step against a non-hole pc: an instruction,
// a loop entry or skip, or an end-of-program marker. It returns
// (successor, true) on progress or a successful loop/program transition,
// and (_, false) when the branch is pruned (output mismatch, ','
// encountered) or the program halts (Empty with an empty loop stack; the
// caller is left to treat that as a solution or a premature halt).
func execKnownStep(n Node, target Target) (Node, bool) {
	switch n.PC.Kind {
	case program.KindInstr:
		return execInstr(n, target)
	case program.KindLoop:
		return execLoop(n), true
	case program.KindEmpty:
		return execEmpty(n)
	default:
		return Node{}, false
	}
}

func execInstr(n Node, target Target) (Node, bool) {
	n.Steps++
	switch n.PC.Instr {
	case program.IncPtr:
		n.DP++
	case program.DecPtr:
		n.DP--
	case program.Inc:
		n.Tape = n.Tape.Set(n.DP, n.Tape.Get(n.DP)+1)
	case program.Dec:
		n.Tape = n.Tape.Set(n.DP, n.Tape.Get(n.DP)-1)
	case program.Output:
		v := n.Tape.Get(n.DP)
		n.Outputs = n.Outputs.Append(v)
		k := n.Outputs.Len() - 1
		if k < len(target) {
			if v != target[k] {
				return Node{}, false // output mismatch: prune
			}
			n.Correct = k + 1
		}
	case program.Input:
		return Node{}, false // ',' unsupported: prune
	}
	n.PC = n.PC.Rest
	return n, true
}

func execLoop(n Node) Node {
	n.Steps++ // virtual '[' step
	if n.Tape.Get(n.DP) == 0 {
		n.PC = n.PC.Rest
		return n
	}
	n.LoopStack = n.pushLoop(LoopFrame{BodyID: n.PC.Body.ID, RestID: n.PC.Rest.ID})
	n.PC = n.PC.Body
	return n
}

func execEmpty(n Node) (Node, bool) {
	if len(n.LoopStack) == 0 {
		return Node{}, false // program halts: no successor
	}
	n.Steps++ // virtual ']' step
	top := n.top()
	if n.Tape.Get(n.DP) != 0 {
		body := program.FindByID(n.Root, top.BodyID)
		if body == nil {
			return Node{}, false // invariant violation: degrade to halting this branch
		}
		n.PC = body
		return n, true
	}
	n.LoopStack = n.popLoop()
	rest := program.FindByID(n.Root, top.RestID)
	if rest == nil {
		return Node{}, false
	}
	n.PC = rest
	return n, true
}

// Halted reports whether n represents end-of-program: pc is Empty and the
// loop stack is empty. Used by the caller to distinguish a premature halt
// from a reported solution.
func Halted(n Node) bool {
	return n.PC.Kind == program.KindEmpty && len(n.LoopStack) == 0
}
