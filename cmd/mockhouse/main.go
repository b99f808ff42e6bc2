package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mockhouse/mockhouse/internal/cli"
	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(mockhouse.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(mockhouse.ExitCodeForError(err))
	}
}
