package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is not attached to a terminal
var ErrNotTerminal = errors.New("stdin and stdout must be a terminal")

// SizeError reports a terminal smaller than the playable minimum
type SizeError struct {
	Width, Height       int
	MinWidth, MinHeight int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("the terminal must be at least %dx%d (currently %dx%d)",
		e.MinWidth, e.MinHeight, e.Width, e.Height)
}

// Reset sequences written by EmergencyReset
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// CheckTTY verifies both descriptors refer to a terminal
func CheckTTY(in, out *os.File) error {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return ErrNotTerminal
	}
	return nil
}

// Open checks the controlling terminal and returns an initialized screen
func Open(minWidth, minHeight int) (tcell.Screen, error) {
	if err := CheckTTY(os.Stdin, os.Stdout); err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := Prepare(screen, minWidth, minHeight); err != nil {
		return nil, err
	}
	return screen, nil
}

// Prepare initializes screen and validates its size. On failure the screen is finalized.
func Prepare(screen tcell.Screen, minWidth, minHeight int) error {
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialize screen")
	}

	w, h := screen.Size()
	if w < minWidth || h < minHeight {
		screen.Fini()
		return &SizeError{Width: w, Height: h, MinWidth: minWidth, MinHeight: minHeight}
	}

	screen.HideCursor()
	screen.Clear()
	return nil
}

// EmergencyReset restores the terminal after a crash, when the screen may not
// have been finalized. Best effort; errors are ignored.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
