// Package dispatch turns report window buttons into side effects and the
// acknowledgment the user should see next.
package dispatch

import (
	"context"
	"time"

	"github.com/ascendara/crashreporter/common"
	"github.com/ascendara/crashreporter/internal/layout"
	"github.com/ascendara/crashreporter/pkg/crash"
	"github.com/ascendara/crashreporter/pkg/logger"
)

// DefaultTimeout bounds a submission when Options.Timeout is unset.
const DefaultTimeout = 5 * time.Second

const (
	reportTitle     = "Crash Report"
	reportThanks    = "Thank you for helping improve Ascendara!\nThe crash report has been uploaded successfully."
	reportFailed    = "The crash report could not be uploaded.\nPlease use Get Support to reach the Ascendara team."
	restartTitle    = "Restart"
	restartManually = "Please restart Ascendara manually at this time."
)

// Submitter delivers a record to a collector and returns its receipt.
type Submitter interface {
	Submit(ctx context.Context, rec crash.Record) (string, error)
}

// Options configures a Dispatcher. Only Open is needed for the support
// button; the rest have defaults.
type Options struct {
	SupportURL string
	// Open launches a URL without waiting for the handler to exit.
	Open      func(url string) error
	Submitter Submitter
	Timeout   time.Duration
	Logger    logger.Logger
}

// Notice is an informational acknowledgment.
type Notice struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Outcome tells the renderer what to do after an action: show Notice if
// set, then end the session if Quit is set.
type Outcome struct {
	Notice *Notice `json:"notice,omitempty"`
	Quit   bool    `json:"quit"`
}

// Dispatcher performs the report window actions for one record.
type Dispatcher struct {
	rec  crash.Record
	opts Options
}

// New returns a dispatcher for rec. A nil Submitter keeps uploads local.
func New(rec crash.Record, opts Options) *Dispatcher {
	if opts.SupportURL == "" {
		opts.SupportURL = common.DefaultSupportURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}
	return &Dispatcher{rec: rec, opts: opts}
}

// Do routes a button action.
func (d *Dispatcher) Do(a layout.Action) Outcome {
	switch a {
	case layout.ActionSubmit:
		return d.SubmitReport()
	case layout.ActionSupport:
		return d.OpenSupport()
	case layout.ActionRestart:
		return d.RestartHost()
	case layout.ActionClose:
		return d.Close()
	}
	return Outcome{}
}

// SubmitReport sends the record when a submitter is configured. Without one
// the acknowledgment is shown as if the upload had happened.
func (d *Dispatcher) SubmitReport() Outcome {
	if d.opts.Submitter == nil {
		return notice(reportTitle, reportThanks)
	}
	ctx, cancel := context.WithTimeout(context.Background(), d.opts.Timeout)
	defer cancel()
	receipt, err := d.opts.Submitter.Submit(ctx, d.rec)
	if err != nil {
		d.opts.Logger.Error("Failed to upload crash report: %v", err)
		return notice(reportTitle, reportFailed)
	}
	d.opts.Logger.Info("Crash report uploaded, receipt %q", receipt)
	return notice(reportTitle, reportThanks)
}

// OpenSupport launches the support channel and leaves the window as is.
func (d *Dispatcher) OpenSupport() Outcome {
	if d.opts.Open == nil {
		d.opts.Logger.Error("Failed to open support link: no opener available")
		return Outcome{}
	}
	if err := d.opts.Open(d.opts.SupportURL); err != nil {
		d.opts.Logger.Error("Failed to open support link: %v", err)
	}
	return Outcome{}
}

// RestartHost asks the user to restart Ascendara themselves.
func (d *Dispatcher) RestartHost() Outcome {
	out := notice(restartTitle, restartManually)
	out.Quit = true
	return out
}

// Close ends the session without an acknowledgment.
func (d *Dispatcher) Close() Outcome {
	return Outcome{Quit: true}
}

func notice(title, msg string) Outcome {
	return Outcome{Notice: &Notice{Title: title, Message: msg}}
}
