package search

import (
	"math"
	"strings"
	"testing"

	"bfsynth/internal/program"
)

func defaultConfig() Config {
	return Config{Beta: 1.0, Gamma: 1.0, MaxSteps: 1_000_000}
}

// A single zero byte is produced by the shortest possible program: one
// output instruction over an untouched (zero) cell.
func TestSolutionForSingleZeroByte(t *testing.T) {
	e := New(Target{0}, defaultConfig())
	out := e.Next()
	if out.Exhausted || out.Solution == nil {
		t.Fatal("expected a solution for T=[0]")
	}
	if out.Solution.Text != "." {
		t.Fatalf("first solution text = %q, want %q", out.Solution.Text, ".")
	}
	if out.Solution.Root.MinLen != 1 {
		t.Fatalf("min_len = %d, want 1", out.Solution.Root.MinLen)
	}
}

// A single byte of 1 should eventually be reached by incrementing a
// cell once before emitting it.
func TestSolutionContainsIncrementThenOutput(t *testing.T) {
	e := New(Target{1}, defaultConfig())
	found := false
	for i := 0; i < 50; i++ {
		out := e.Next()
		if out.Exhausted {
			break
		}
		if out.Solution.Text == "+." {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected \"+.\" among the reported solutions for T=[1]")
	}
}

// A non-repeating multi-byte target should still yield a finite solution
// that never relies on the unsupported input instruction.
func TestSolutionNeverContainsInputInstruction(t *testing.T) {
	e := New(Target{1, 2, 3}, defaultConfig())
	out := e.Next()
	if out.Exhausted || out.Solution == nil {
		t.Fatal("expected a solution for T=[1,2,3]")
	}
	if strings.Contains(out.Solution.Text, ",") {
		t.Fatal("a reported solution must never contain ','")
	}
}

// A repeating target should eventually surface a solution that uses a
// loop rather than repeating instructions verbatim.
func TestSolutionForRepeatingTargetUsesLoop(t *testing.T) {
	e := New(Target{65, 66, 65, 66}, defaultConfig())
	sawLoop := false
	for i := 0; i < 2000; i++ {
		out := e.Next()
		if out.Exhausted {
			break
		}
		if strings.Contains(out.Solution.Text, "[") {
			sawLoop = true
			break
		}
	}
	if !sawLoop {
		t.Fatal("expected at least one solution containing a loop for a repeating target")
	}
}

func TestSolutionDedupSkipsRepeatedText(t *testing.T) {
	e := New(Target{0}, defaultConfig())
	seenTexts := map[string]int{}
	for i := 0; i < 20; i++ {
		out := e.Next()
		if out.Exhausted {
			break
		}
		seenTexts[out.Solution.Text]++
	}
	for text, count := range seenTexts {
		if count > 1 {
			t.Fatalf("solution text %q reported %d times, dedup should report it once", text, count)
		}
	}
}

func TestExhaustionOnImpossibleTarget(t *testing.T) {
	// A step cap of 0 means even the first real step exceeds the cap,
	// so the frontier drains without ever reporting a solution.
	e := New(Target{5}, Config{Beta: 1.0, Gamma: 1.0, MaxSteps: 0})
	out := e.Next()
	if !out.Exhausted {
		t.Fatal("expected exhaustion with a zero step cap")
	}
}

func TestScoreFormula(t *testing.T) {
	n := Initial()
	n.Correct = 3
	n.Steps = 7
	cfg := Config{Beta: 2.0, Gamma: 0.5, MaxSteps: 100}
	got := Score(n, cfg)
	want := 3.0 - 2.0*float64(n.Root.MinLen) - 0.5*math.Log2(8)
	if got != want {
		t.Fatalf("Score = %v, want %v", got, want)
	}
}

func TestFrontierOrdering(t *testing.T) {
	f := newFrontier()
	f.push(item{seq: 0, score: 1.0})
	f.push(item{seq: 1, score: 5.0})
	f.push(item{seq: 2, score: 5.0}) // tie with seq 1; seq 1 should win (older-first)
	f.push(item{seq: 3, score: -2.0})

	first, _ := f.pop()
	if first.score != 5.0 || first.seq != 1 {
		t.Fatalf("first pop = %+v, want score 5.0 seq 1", first)
	}
	second, _ := f.pop()
	if second.score != 5.0 || second.seq != 2 {
		t.Fatalf("second pop = %+v, want score 5.0 seq 2", second)
	}
	third, _ := f.pop()
	if third.score != 1.0 {
		t.Fatalf("third pop score = %v, want 1.0", third.score)
	}
}

func TestDeterministicOrderingAcrossRuns(t *testing.T) {
	run := func() []string {
		e := New(Target{1, 2}, defaultConfig())
		var texts []string
		for i := 0; i < 10; i++ {
			out := e.Next()
			if out.Exhausted {
				break
			}
			texts = append(texts, out.Solution.Text)
		}
		return texts
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("different solution counts across runs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("solution order diverged at index %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestConcretizeMinLenMatchesTextLength(t *testing.T) {
	e := New(Target{0, 0, 0}, defaultConfig())
	out := e.Next()
	if out.Exhausted {
		t.Fatal("expected a solution")
	}
	text := program.ToText(out.Solution.Root)
	if len(text) != out.Solution.Root.MinLen {
		t.Fatalf("len(text)=%d, MinLen=%d: concretize_min's text length must equal min_len", len(text), out.Solution.Root.MinLen)
	}
}
