package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the display before a crash report is printed
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashTarget Finalizer

	// Overridden in tests
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// RegisterCrashTarget sets the display restored by HandleCrash; nil clears it
func RegisterCrashTarget(f Finalizer) {
	crashMu.Lock()
	crashTarget = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the display and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	target := crashTarget
	crashTarget = nil
	crashMu.Unlock()

	if target != nil {
		target.Fini()
	}

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
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
