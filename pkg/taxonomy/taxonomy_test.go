package taxonomy

import (
	"sort"
	"testing"
)

func TestResolveToolName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"gofilehelper", "Ascendara GoFile Helper"},
		{"maindownloader", "Ascendara Downloader"},
		{"gamehandler", "Ascendara Game Handler"},
		{"toplevel", "Ascendara"},
		{"languagetranslation", "Ascendara Language Translation"},
		{"torrenthandler", "Ascendara Torrent Handler"},
		{"notificationhelper", "Ascendara Notification Helper"},
		{"TopLevel", "Ascendara"},
		{"GAMEHANDLER", "Ascendara Game Handler"},
		{"", UnknownToolName},
		{"unknowntool", UnknownToolName},
		{"mainapp", UnknownToolName},
		{" toplevel", UnknownToolName},
		{"toplevel\n", UnknownToolName},
		{"тoplevel", UnknownToolName},
		{"\xff\xfe", UnknownToolName},
		{"🔥", UnknownToolName},
	}
	for _, tt := range tests {
		if got := ResolveToolName(tt.id); got != tt.want {
			t.Errorf("ResolveToolName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestToolsRoundTrip(t *testing.T) {
	all := Tools()
	if len(all) != 7 {
		t.Fatalf("expected 7 tools, got %d", len(all))
	}
	for _, tool := range all {
		if tool.DisplayName() == "" || tool.DisplayName() == UnknownToolName {
			t.Errorf("tool %v has no display name", tool)
		}
		if got := ParseTool(tool.Identifier()); got != tool {
			t.Errorf("ParseTool(%q) = %v, want %v", tool.Identifier(), got, tool)
		}
	}
}

func TestToolUnknown(t *testing.T) {
	var tool Tool
	if tool != ToolUnknown {
		t.Fatalf("zero value should be ToolUnknown")
	}
	if tool.Identifier() != "" {
		t.Errorf("unknown tool identifier = %q", tool.Identifier())
	}
	if tool.String() != "unknown" {
		t.Errorf("unknown tool string = %q", tool.String())
	}
	if Tool(99).DisplayName() != UnknownToolName {
		t.Errorf("out of range tool should display as unknown")
	}
}

func TestResolveErrorDescription(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{1000, "An unknown error occurred"},
		{1001, "An unhandled exception occurred"},
		{1002, "An unhandled rejection occurred"},
		{1003, "A network error occurred"},
		{1004, "Invalid data received"},
		{1100, "Game not found"},
		{1104, "Settings file error"},
		{1105, "Download directory error"},
		{1202, "Error processing file for Language Translation operation"},
		{1303, "GoFile authentication failed"},
		{1408, "Failed to launch helper process"},
		{1506, "Failed to install torrent content"},
		{1604, "Error during notification animation"},
		{-1, UnrecognizedDescription},
		{0, UnrecognizedDescription},
		{42, UnrecognizedDescription},
		{1005, UnrecognizedDescription},
		{1106, UnrecognizedDescription},
		{1199, UnrecognizedDescription},
		{1605, UnrecognizedDescription},
		{9999, UnrecognizedDescription},
		{-2147483648, UnrecognizedDescription},
		{2147483647, UnrecognizedDescription},
	}
	for _, tt := range tests {
		if got := ResolveErrorDescription(tt.code); got != tt.want {
			t.Errorf("ResolveErrorDescription(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCodesTable(t *testing.T) {
	all := Codes()
	if len(all) != 41 {
		t.Fatalf("expected 41 listed codes, got %d", len(all))
	}
	if !sort.IntsAreSorted(all) {
		t.Fatal("codes table must be sorted for binary search")
	}
	for i := 1; i < len(all); i++ {
		if all[i] == all[i-1] {
			t.Fatalf("duplicate code %d", all[i])
		}
	}
	for _, c := range all {
		if !Known(c) {
			t.Errorf("listed code %d not known", c)
		}
		if DomainOf(c) == DomainUnrecognized {
			t.Errorf("listed code %d outside every domain", c)
		}
		if ResolveErrorDescription(c) == UnrecognizedDescription {
			t.Errorf("listed code %d has no description", c)
		}
	}
	// Codes hands out a copy
	all[0] = -5
	if Codes()[0] != 1000 {
		t.Fatal("Codes must return a fresh slice")
	}
}

func TestDomainOf(t *testing.T) {
	tests := []struct {
		code int
		want Domain
	}{
		{999, DomainUnrecognized},
		{1000, DomainGeneral},
		{1004, DomainGeneral},
		{1005, DomainUnrecognized},
		{1099, DomainUnrecognized},
		{1100, DomainGameHandler},
		{1199, DomainGameHandler},
		{1250, DomainTranslation},
		{1300, DomainGoFile},
		{1499, DomainDownloader},
		{1500, DomainTorrent},
		{1699, DomainNotification},
		{1700, DomainUnrecognized},
		{-1, DomainUnrecognized},
	}
	for _, tt := range tests {
		if got := DomainOf(tt.code); got != tt.want {
			t.Errorf("DomainOf(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
	if DomainNotification.String() != "notification" || DomainUnrecognized.String() != "unrecognized" {
		t.Error("unexpected domain names")
	}
}
