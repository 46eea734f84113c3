// Package layout turns a crash record into a toolkit-independent window
// description. Renderers in internal/gui and internal/tui draw the result.
package layout

import (
	"encoding/json"
	"fmt"

	"github.com/ascendara/crashreporter/pkg/crash"
)

// Title is shown on every report window regardless of severity.
const Title = "Ascendara Error Report"

// Kind is the type of a widget.
type Kind int

const (
	KindHeading Kind = iota
	KindText
	KindCard
	KindField
	KindList
	KindDetails
	KindButton
)

var kindNames = [...]string{
	KindHeading: "heading",
	KindText:    "text",
	KindCard:    "card",
	KindField:   "field",
	KindList:    "list",
	KindDetails: "details",
	KindButton:  "button",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Tone selects the foreground color of a widget.
type Tone int

const (
	ToneNormal Tone = iota
	ToneError
	ToneAccent
)

func (t Tone) String() string {
	switch t {
	case ToneError:
		return "error"
	case ToneAccent:
		return "accent"
	default:
		return "normal"
	}
}

func (t Tone) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Action is the user operation bound to a button.
type Action int

const (
	ActionNone Action = iota
	ActionSubmit
	ActionSupport
	ActionRestart
	ActionClose
)

func (a Action) String() string {
	switch a {
	case ActionSubmit:
		return "submit"
	case ActionSupport:
		return "support"
	case ActionRestart:
		return "restart"
	case ActionClose:
		return "close"
	default:
		return "none"
	}
}

func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// Rect is a position and size in window coordinates.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// Palette colors shared by both templates.
var (
	CriticalBackground  = Color{252, 232, 230}
	CriticalCard        = Color{250, 218, 215}
	ComponentBackground = Color{255, 255, 255}
	ComponentCard       = Color{248, 249, 250}
	ErrorText           = Color{217, 48, 37}
	AccentText          = Color{26, 115, 232}
	NormalText          = Color{0, 0, 0}
)

// Widget is one element of a window. Fields that do not apply to a Kind
// are left zero.
type Widget struct {
	Kind      Kind     `json:"kind"`
	Bounds    Rect     `json:"bounds"`
	Text      string   `json:"text,omitempty"`
	Label     string   `json:"label,omitempty"`
	Items     []string `json:"items,omitempty"`
	Tone      Tone     `json:"tone"`
	Size      int      `json:"size,omitempty"`
	Bold      bool     `json:"bold,omitempty"`
	Monospace bool     `json:"monospace,omitempty"`
	ReadOnly  bool     `json:"read_only,omitempty"`
	Fill      *Color   `json:"fill,omitempty"`
	Action    Action   `json:"action,omitempty"`
}

// Window is the complete declarative description of a report window.
type Window struct {
	Title      string         `json:"title"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Template   crash.Template `json:"template"`
	Background Color          `json:"background"`
	Widgets    []Widget       `json:"widgets"`
}

// Buttons returns the window's buttons in placement order.
func (w Window) Buttons() []Widget {
	return w.Find(KindButton)
}

// Find returns every widget of kind k in placement order.
func (w Window) Find(k Kind) []Widget {
	var out []Widget
	for _, wd := range w.Widgets {
		if wd.Kind == k {
			out = append(out, wd)
		}
	}
	return out
}

// Build lays out rec using the template selected by sev.
func Build(sev crash.Severity, rec crash.Record) Window {
	p := sev.Preset()
	w := Window{
		Title:    Title,
		Width:    p.Width,
		Height:   p.Height,
		Template: sev.Template(),
	}
	if w.Template == crash.TemplateCritical {
		w.Background = CriticalBackground
		w.Widgets = criticalWidgets(w.Width, rec)
	} else {
		w.Background = ComponentBackground
		w.Widgets = componentWidgets(w.Width, rec)
	}
	return w
}
