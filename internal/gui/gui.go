// Package gui draws a report window with the fyne toolkit.
package gui

import (
	"errors"

	"github.com/ascendara/crashreporter/internal/dispatch"
	"github.com/ascendara/crashreporter/internal/icon"
	"github.com/ascendara/crashreporter/internal/layout"
)

// AppID identifies the reporter to the desktop environment.
const AppID = "app.ascendara.crashreporter"

var ErrUnavailable = errors.New("graphical display unavailable")

// Actor performs a button action.
type Actor interface {
	Do(layout.Action) dispatch.Outcome
}

// Options carries the optional extras of a report window.
type Options struct {
	// Icon is optional. Without it the toolkit default is kept.
	Icon *icon.Icon
}
