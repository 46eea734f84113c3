package common

import "encoding/json"

// SubmitMethod is the JSON-RPC method a collector must serve.
const SubmitMethod = "crash.submit"

// SubmitParams is the single argument of SubmitMethod. Report holds the
// JSON encoding of the crash record.
type SubmitParams struct {
	SubmissionId string          `json:"submission_id"`
	Version      string          `json:"version,omitempty"`
	OS           string          `json:"os"`
	Arch         string          `json:"arch"`
	Severity     string          `json:"severity"`
	Report       json.RawMessage `json:"report"`
}

// SubmitResult acknowledges a stored report.
type SubmitResult struct {
	Receipt string `json:"receipt"`
}
