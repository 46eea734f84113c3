package crash

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ascendara/crashreporter/pkg/taxonomy"
)

// TimestampLayout is the sortable encoding used for CapturedAt.
const TimestampLayout = "2006-01-02T15:04:05"

// Record is the resolved description of one failure. It is built once at
// startup and only exposes read accessors.
type Record struct {
	toolID      string
	toolName    string
	code        int
	description string
	message     string
	capturedAt  time.Time
}

// Build resolves identifier and code and stores message verbatim. Inputs
// are expected to be validated by the caller.
func Build(identifier string, code int, message string, now time.Time) Record {
	return Record{
		toolID:      strings.ToLower(identifier),
		toolName:    taxonomy.ResolveToolName(identifier),
		code:        code,
		description: taxonomy.ResolveErrorDescription(code),
		message:     message,
		capturedAt:  now,
	}
}

func (r Record) ToolIdentifier() string { return r.toolID }
func (r Record) ToolName() string       { return r.toolName }
func (r Record) Code() int              { return r.code }
func (r Record) Description() string    { return r.description }
func (r Record) Message() string        { return r.message }
func (r Record) CapturedAt() time.Time  { return r.capturedAt }

// Timestamp formats CapturedAt in local time with TimestampLayout.
func (r Record) Timestamp() string {
	return r.capturedAt.Local().Format(TimestampLayout)
}

// Severity classifies the record's tool.
func (r Record) Severity() Severity {
	return Classify(r.toolID)
}

// Equal compares every field except the capture time.
func (r Record) Equal(o Record) bool {
	return r.toolID == o.toolID &&
		r.toolName == o.toolName &&
		r.code == o.code &&
		r.description == o.description &&
		r.message == o.message
}

type recordJSON struct {
	ToolIdentifier string `json:"tool_identifier"`
	ToolName       string `json:"tool_name"`
	ErrorCode      int    `json:"error_code"`
	Description    string `json:"description"`
	Message        string `json:"message"`
	CapturedAt     string `json:"captured_at"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		ToolIdentifier: r.toolID,
		ToolName:       r.toolName,
		ErrorCode:      r.code,
		Description:    r.description,
		Message:        r.message,
		CapturedAt:     r.Timestamp(),
	})
}
