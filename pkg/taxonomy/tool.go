// Package taxonomy maps the identifiers and error codes used across the
// Ascendara suite to the strings shown to users. The tables here mirror the
// ones every helper process uses when it launches the crash reporter, so
// entries must only change together with the rest of the suite.
package taxonomy

import "strings"

// Tool is one of the recognized Ascendara processes. The zero value is
// ToolUnknown.
type Tool int

const (
	ToolUnknown Tool = iota
	ToolGoFileHelper
	ToolMainDownloader
	ToolGameHandler
	ToolTopLevel
	ToolLanguageTranslation
	ToolTorrentHandler
	ToolNotificationHelper
)

// UnknownToolName is the display name for identifiers outside the table.
const UnknownToolName = "Unknown Ascendara Tool"

type toolInfo struct {
	id   string
	name string
}

var tools = [...]toolInfo{
	ToolUnknown:             {"", UnknownToolName},
	ToolGoFileHelper:        {"gofilehelper", "Ascendara GoFile Helper"},
	ToolMainDownloader:      {"maindownloader", "Ascendara Downloader"},
	ToolGameHandler:         {"gamehandler", "Ascendara Game Handler"},
	ToolTopLevel:            {"toplevel", "Ascendara"},
	ToolLanguageTranslation: {"languagetranslation", "Ascendara Language Translation"},
	ToolTorrentHandler:      {"torrenthandler", "Ascendara Torrent Handler"},
	ToolNotificationHelper:  {"notificationhelper", "Ascendara Notification Helper"},
}

// ParseTool returns the tool named by id, ignoring case. Anything that is
// not an exact (case-folded) identifier resolves to ToolUnknown.
func ParseTool(id string) Tool {
	id = strings.ToLower(id)
	if id == "" {
		return ToolUnknown
	}
	for t := ToolGoFileHelper; t <= ToolNotificationHelper; t++ {
		if tools[t].id == id {
			return t
		}
	}
	return ToolUnknown
}

func (t Tool) valid() bool {
	return t > ToolUnknown && t <= ToolNotificationHelper
}

// Identifier returns the lower-case wire identifier, or "" for ToolUnknown.
func (t Tool) Identifier() string {
	if !t.valid() {
		return ""
	}
	return tools[t].id
}

// DisplayName returns the user-facing name of the tool.
func (t Tool) DisplayName() string {
	if !t.valid() {
		return UnknownToolName
	}
	return tools[t].name
}

func (t Tool) String() string {
	if !t.valid() {
		return "unknown"
	}
	return tools[t].id
}

// Tools lists every recognized tool in table order.
func Tools() []Tool {
	out := make([]Tool, 0, len(tools)-1)
	for t := ToolGoFileHelper; t <= ToolNotificationHelper; t++ {
		out = append(out, t)
	}
	return out
}

// ResolveToolName maps a raw tool identifier to its display name.
func ResolveToolName(identifier string) string {
	return ParseTool(identifier).DisplayName()
}
