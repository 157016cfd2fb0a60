// Package terminal owns the lifecycle of the game's tcell screen.
//
// It checks that stdin and stdout are terminals, initializes the screen,
// enforces the minimum field size, and restores a sane terminal state when
// the process panics. The screen size is sampled once; resize events are
// not handled.
package terminal
