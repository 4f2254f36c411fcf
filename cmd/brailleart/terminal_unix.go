// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminalWidth returns the number of columns of the controlling terminal.
func terminalWidth() (int, error) {
	// stdout may be redirected to a file; stderr usually is not.
	ws, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}
	return int(ws.Col), nil
}
