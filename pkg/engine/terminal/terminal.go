// Package terminal wraps the bits of x/term the terminal view needs.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// EnterRaw puts stdin into raw mode so single key presses arrive unbuffered.
// The returned function restores the previous mode.
func EnterRaw() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to set terminal to raw mode: %w", err)
	}
	return func() {
		_ = term.Restore(fd, oldState)
	}, nil
}

// Clear homes the cursor and erases the screen.
func Clear() {
	fmt.Print("\x1b[H\x1b[2J")
}

// HideCursor hides the cursor until ShowCursor is called.
func HideCursor() {
	fmt.Print("\x1b[?25l")
}

// ShowCursor makes the cursor visible again.
func ShowCursor() {
	fmt.Print("\x1b[?25h")
}
