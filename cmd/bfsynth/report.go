package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"bfsynth/internal/runner"
)

// printSolution renders one reported solution the way the interactive
// session presents it: program length, program text, decimal rendering
// of the extrapolated outputs, runner step count, and halted flag.
func printSolution(index int, minLen int, text string, res runner.Result) {
	fmt.Println()
	fmt.Printf("Solution #%d found:\n", index)
	fmt.Printf("Program length (inst): %d\n", minLen)
	fmt.Println("Program:")
	fmt.Println(text)
	fmt.Println()
	fmt.Printf("Output (first %s bytes shown):\n", humanize.Comma(int64(len(res.Outputs))))
	fmt.Printf("DEC  : %s\n", decimalJoin(res.Outputs))
	fmt.Printf("Interpreter steps during demo: %s (halted: %t)\n", humanize.Comma(int64(res.Steps)), res.Halted)
}

func decimalJoin(bs []byte) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = fmt.Sprintf("%d", b)
	}
	return strings.Join(parts, " ")
}
