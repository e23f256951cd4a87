// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal has small helpers for manipulating interactive terminals.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines erases the lines occupied by textLength characters of
// already-entered input, wrapping included. Used to wipe secrets (tokens,
// DSNs) from the scrollback right after the user presses Enter.
func ClearPreviousLines(textLength int) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	lines := (textLength + width - 1) / width
	if lines < 1 {
		lines = 1
	}
	// Enter moved the cursor onto a fresh line below the input.
	lines++

	for i := 0; i < lines; i++ {
		fmt.Print("\r\x1b[2K")
		if i < lines-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
