package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// restore is registered by the binary that owns the terminal. The engine
// packages never touch it.
var restore func()

// SetRestore registers the function that returns the terminal to a usable
// state before crash output is printed. Call once during startup, before
// spawning goroutines with Go.
func SetRestore(fn func()) {
	restore = fn
}

// HandleCrash is the unified panic handler that restores the terminal and
// prints the stack trace.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if restore != nil {
		restore()
	}

	// Force flush stdout/stderr before printing to stderr
	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
