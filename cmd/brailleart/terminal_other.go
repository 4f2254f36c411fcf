// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

package main

import "errors"

func terminalWidth() (int, error) {
	return 0, errors.New("terminal size unavailable on this platform")
}
