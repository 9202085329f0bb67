// Package main provides the siquant binary entry point.
// Siquant is a dimensional analysis engine: it evaluates physical
// quantity expressions with unit-aware, dimensionally-checked arithmetic.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/c360studio/siquant/commands"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
