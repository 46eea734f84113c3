// Package crash holds the report model and the severity decision that
// drives how a failure is presented.
package crash

import (
	"encoding/json"

	"github.com/ascendara/crashreporter/pkg/taxonomy"
)

// Severity tells whether the whole application died or a single helper
// process did. The zero value is Component.
type Severity int

const (
	Component Severity = iota
	Critical
)

// Classify returns Critical only for the top-level application.
func Classify(identifier string) Severity {
	if taxonomy.ParseTool(identifier) == taxonomy.ToolTopLevel {
		return Critical
	}
	return Component
}

func (s Severity) String() string {
	if s == Critical {
		return "critical"
	}
	return "component"
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Preset is the window size used for a severity class.
type Preset struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

var (
	criticalPreset  = Preset{Width: 800, Height: 600}
	componentPreset = Preset{Width: 600, Height: 550}
)

// Preset returns the window dimensions for s.
func (s Severity) Preset() Preset {
	if s == Critical {
		return criticalPreset
	}
	return componentPreset
}

// Template selects one of the two mutually exclusive window layouts.
type Template int

const (
	TemplateComponent Template = iota
	TemplateCritical
)

func (t Template) String() string {
	if t == TemplateCritical {
		return "critical"
	}
	return "component"
}

func (t Template) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Template returns the layout template for s.
func (s Severity) Template() Template {
	if s == Critical {
		return TemplateCritical
	}
	return TemplateComponent
}
