package layout

import (
	"strconv"

	"github.com/ascendara/crashreporter/pkg/crash"
)

const cardX = 30

var suggestions = []string{
	"Restart Ascendara",
	"Check for updates",
	"Verify your internet connection",
	"Make sure your system meets the minimum requirements",
}

func criticalWidgets(winW int, rec crash.Record) []Widget {
	cardW := winW - 2*cardX
	card := CriticalCard
	btnY := 520
	return []Widget{
		{
			Kind:   KindHeading,
			Bounds: Rect{0, 20, winW, 40},
			Text:   "⚠ Critical Error: Ascendara Has Stopped Working",
			Size:   18,
			Bold:   true,
		},
		{
			Kind:   KindText,
			Bounds: Rect{100, 60, 600, 40},
			Text:   "The main Ascendara application has encountered a serious error and needs to close.",
			Size:   11,
		},
		{Kind: KindCard, Bounds: Rect{cardX, 110, cardW, 100}, Fill: &card},
		{
			Kind:   KindField,
			Bounds: Rect{cardX + 10, 120, cardW - 20, 30},
			Label:  "Critical Error Code:",
			Text:   strconv.Itoa(rec.Code()),
		},
		{
			Kind:   KindField,
			Bounds: Rect{cardX + 10, 150, cardW - 20, 30},
			Label:  "Error Details:",
			Text:   rec.Description(),
		},
		{
			Kind:   KindList,
			Bounds: Rect{cardX, 230, cardW, 110},
			Label:  "What You Can Try:",
			Items:  append([]string(nil), suggestions...),
			Bold:   true,
		},
		{
			Kind:      KindDetails,
			Bounds:    Rect{cardX, 350, cardW, 130},
			Label:     "Technical Information:",
			Text:      rec.Message(),
			Size:      10,
			Monospace: true,
			ReadOnly:  true,
			Fill:      &card,
		},
		{Kind: KindButton, Bounds: Rect{cardX + 50, btnY, 140, 35}, Text: "Report Problem", Action: ActionSubmit},
		{Kind: KindButton, Bounds: Rect{cardX + 210, btnY, 140, 35}, Text: "Restart Ascendara", Action: ActionRestart},
		{Kind: KindButton, Bounds: Rect{cardX + 370, btnY, 100, 35}, Text: "Exit", Action: ActionClose},
	}
}

func componentWidgets(winW int, rec crash.Record) []Widget {
	cardW := winW - 2*cardX
	card := ComponentCard
	btnY, btnH := 460, 40
	return []Widget{
		{
			Kind:   KindHeading,
			Bounds: Rect{0, 20, winW, 40},
			Text:   "⚠️ Ascendara Core Utility Crash",
			Size:   20,
			Bold:   true,
		},
		{
			Kind:   KindText,
			Bounds: Rect{30, 60, 540, 40},
			Text:   "A critical component of Ascendara has encountered an error and needs to close.",
			Size:   13,
		},
		{
			Kind:   KindField,
			Bounds: Rect{30, 110, 490, 30},
			Label:  "Affected Component:",
			Text:   rec.ToolName(),
			Tone:   ToneAccent,
			Size:   13,
		},
		{Kind: KindCard, Bounds: Rect{cardX, 150, cardW, 100}, Fill: &card},
		{
			Kind:   KindField,
			Bounds: Rect{cardX + 10, 160, 410, 30},
			Label:  "Diagnostic Code:",
			Text:   strconv.Itoa(rec.Code()),
			Tone:   ToneError,
			Size:   13,
		},
		{
			Kind:   KindField,
			Bounds: Rect{cardX + 10, 200, 490, 30},
			Label:  "What Happened:",
			Text:   rec.Description(),
			Size:   13,
		},
		{
			Kind:      KindDetails,
			Bounds:    Rect{cardX, 270, cardW, 130},
			Label:     "Technical Details (useful for troubleshooting):",
			Text:      rec.Message(),
			Size:      14,
			Monospace: true,
			Fill:      &card,
		},
		{
			Kind:   KindText,
			Bounds: Rect{cardX, 420, cardW, 40},
			Text:   "To help us improve Ascendara, you can report this issue or get support below:",
			Size:   12,
		},
		{Kind: KindButton, Bounds: Rect{50, btnY, 120, btnH}, Text: "Get Support", Action: ActionSupport, Size: 13},
		{Kind: KindButton, Bounds: Rect{200, btnY, 160, btnH}, Text: "Upload Crash Report", Action: ActionSubmit, Size: 13},
		{Kind: KindButton, Bounds: Rect{400, btnY, 100, btnH}, Text: "Close", Action: ActionClose, Size: 13},
	}
}
