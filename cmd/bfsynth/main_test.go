package main

import "testing"

// Malformed input is rejected before the core ever starts searching.
func TestRunExitsTwoOnValidationFailure(t *testing.T) {
	if code := run([]string{"--hex", "0"}); code != 2 {
		t.Fatalf("run with malformed hex = %d, want 2", code)
	}
}

func TestRunExitsZeroOnBoundedRun(t *testing.T) {
	// Non-interactive (stdout isn't a TTY under `go test`) with a solution
	// cap: the CLI should report exactly one solution and exit cleanly.
	if code := run([]string{"--max-solutions", "1", "0"}); code != 0 {
		t.Fatalf("bounded run = %d, want 0", code)
	}
}
