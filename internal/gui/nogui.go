//go:build nogui

package gui

import "github.com/ascendara/crashreporter/internal/layout"

// Available is always false in builds without a toolkit.
func Available() bool {
	return false
}

// Run always fails with ErrUnavailable.
func Run(layout.Window, Actor, Options) error {
	return ErrUnavailable
}
