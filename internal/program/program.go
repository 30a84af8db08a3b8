// Package program implements the immutable, structurally shared AST of a
// partial tape-machine program: the Hole/Empty/Instr/Loop grammar that the
// search engine grows one hole at a time.
package program

import "bfsynth/internal/apperrors"

// Instr is one of the six supported, side-effect-free instructions.
type Instr byte

const (
	IncPtr Instr = '>'
	DecPtr Instr = '<'
	Inc    Instr = '+'
	Dec    Instr = '-'
	Output Instr = '.'
	Input  Instr = ',' // generated by the grammar, always pruned by the interpreter
)

// Instrs lists every instruction production in grammar order.
var Instrs = [6]Instr{IncPtr, DecPtr, Inc, Dec, Output, Input}

// Kind discriminates the four node shapes of the grammar.
type Kind int

const (
	KindHole Kind = iota
	KindEmpty
	KindInstr
	KindLoop
)

// Node is an immutable program fragment with a stable id and a cached
// minimum-instruction-count metric. Subtrees are shared by reference
// between trees; a Node is never mutated after construction.
type Node struct {
	ID     int64
	Kind   Kind
	Instr  Instr // valid when Kind == KindInstr
	Rest   *Node // valid when Kind == KindInstr or KindLoop (continuation after)
	Body   *Node // valid when Kind == KindLoop
	MinLen int
}

// NewHole returns an unexplored continuation with the given id.
func NewHole(id int64) *Node {
	return &Node{ID: id, Kind: KindHole, MinLen: 0}
}

// NewEmpty returns an end-of-program leaf with the given id.
func NewEmpty(id int64) *Node {
	return &Node{ID: id, Kind: KindEmpty, MinLen: 0}
}

// NewInstr builds Instr(i, rest) with the given outer id.
func NewInstr(id int64, i Instr, rest *Node) *Node {
	return &Node{ID: id, Kind: KindInstr, Instr: i, Rest: rest, MinLen: 1 + rest.MinLen}
}

// NewLoop builds Loop(body, rest) with the given outer id.
func NewLoop(id int64, body, rest *Node) *Node {
	return &Node{ID: id, Kind: KindLoop, Body: body, Rest: rest, MinLen: 2 + body.MinLen + rest.MinLen}
}

// ReplaceHole returns a tree identical to root except the unique hole with
// id == targetID has been substituted by replacement. Every other node on
// the path from root to that hole is reconstructed but keeps its original
// id. This is what lets loop-stack frames, which store ids rather than
// pointers, keep resolving after the substitution.
func ReplaceHole(root *Node, targetID int64, replacement *Node) (*Node, error) {
	newRoot, changed := replaceHole(root, targetID, replacement)
	if !changed {
		return nil, apperrors.NewInvariant(targetID, "replace_hole: target hole not reachable from root")
	}
	return newRoot, nil
}

func replaceHole(cur *Node, targetID int64, replacement *Node) (*Node, bool) {
	switch cur.Kind {
	case KindHole:
		if cur.ID == targetID {
			return replacement, true
		}
		return cur, false
	case KindEmpty:
		return cur, false
	case KindInstr:
		newRest, changed := replaceHole(cur.Rest, targetID, replacement)
		if !changed {
			return cur, false
		}
		return NewInstr(cur.ID, cur.Instr, newRest), true
	case KindLoop:
		newBody, changedBody := replaceHole(cur.Body, targetID, replacement)
		newRest, changedRest := replaceHole(cur.Rest, targetID, replacement)
		if !changedBody && !changedRest {
			return cur, false
		}
		return NewLoop(cur.ID, newBody, newRest), true
	default:
		return cur, false
	}
}

// FindByID locates a subtree by id via depth-first search, body before
// rest, returning nil if absent.
func FindByID(root *Node, id int64) *Node {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return root
	}
	switch root.Kind {
	case KindInstr:
		return FindByID(root.Rest, id)
	case KindLoop:
		if found := FindByID(root.Body, id); found != nil {
			return found
		}
		return FindByID(root.Rest, id)
	default:
		return nil
	}
}

// ConcretizeMin deep-maps root, replacing every Hole with an Empty of the
// same id, leaving everything else (including ids) untouched.
func ConcretizeMin(root *Node) *Node {
	switch root.Kind {
	case KindHole:
		return NewEmpty(root.ID)
	case KindEmpty:
		return root
	case KindInstr:
		return NewInstr(root.ID, root.Instr, ConcretizeMin(root.Rest))
	case KindLoop:
		return NewLoop(root.ID, ConcretizeMin(root.Body), ConcretizeMin(root.Rest))
	default:
		return root
	}
}

// ToText renders the canonical surface syntax of a concrete program (no
// holes). Holes print nothing; callers that need a faithful rendering of a
// partial program should call ConcretizeMin first.
func ToText(root *Node) string {
	var b []byte
	b = appendText(b, root)
	return string(b)
}

func appendText(b []byte, n *Node) []byte {
	switch n.Kind {
	case KindHole, KindEmpty:
		return b
	case KindInstr:
		b = append(b, byte(n.Instr))
		return appendText(b, n.Rest)
	case KindLoop:
		b = append(b, '[')
		b = appendText(b, n.Body)
		b = append(b, ']')
		return appendText(b, n.Rest)
	default:
		return b
	}
}
