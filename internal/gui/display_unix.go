//go:build !nogui && !windows && !darwin

package gui

import "os"

var getenv = os.Getenv

func hasDisplay() bool {
	return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
}
