package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/whale-simulator/terminal"
	"github.com/pkg/errors"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crash("WHALE SIMULATOR CRASHED", r)
		}
	}()

	os.Exit(execute(context.Background(), os.Args[1:]))
}

// execute runs the root command and maps its error to an exit code
func execute(ctx context.Context, args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n\n%s", usage.err, cmd.UsageString())
		return exitUsage
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "An error occurred whilst running the game:")
	fmt.Fprintf(cmd.ErrOrStderr(), "%v.\n", err)
	return exitError
}

// crash restores the terminal and dies with a stack trace.
// Uses \r\n so the output survives raw mode.
func crash(what string, r any) {
	terminal.EmergencyReset(os.Stdout)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(exitError)
}
