//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import "os"

func resetTerminalMode() {}

// InterruptSignals lists the signals that end a run gracefully
func InterruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
