package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilechase/logger"
)

// crashScreen is restored before a crash report is printed
var crashScreen atomic.Pointer[tcell.Screen]

func setCrashScreen(s tcell.Screen) {
	if s == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&s)
}

// handleCrash restores the terminal, prints the panic and its stack and exits
func handleCrash(r any) {
	if r == nil {
		return
	}
	if s := crashScreen.Swap(nil); s != nil {
		(*s).Fini()
	}
	stack := debug.Stack()
	logger.Log.WithField("panic", fmt.Sprint(r)).Error("crash")

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTILECHASE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()
	os.Exit(1)
}

// goSafe runs fn in a new goroutine that reports panics through handleCrash
func goSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		fn()
	}()
}
