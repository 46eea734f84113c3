package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/ascendara/crashreporter/cmd/common"
	rootcommon "github.com/ascendara/crashreporter/common"
	"github.com/ascendara/crashreporter/internal/browser"
	"github.com/ascendara/crashreporter/internal/config"
	"github.com/ascendara/crashreporter/internal/dispatch"
	"github.com/ascendara/crashreporter/internal/gui"
	"github.com/ascendara/crashreporter/internal/icon"
	"github.com/ascendara/crashreporter/internal/layout"
	"github.com/ascendara/crashreporter/internal/submit"
	"github.com/ascendara/crashreporter/internal/tui"
	"github.com/ascendara/crashreporter/pkg/crash"
	"github.com/ascendara/crashreporter/pkg/logger"
)

// Side effects are reached through these so tests can replace them.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	env          = envconfig.OsLookuper()
	fs           = afero.NewOsFs()
	executable   = os.Executable
	now          = time.Now
	openURL      = browser.Open
	guiAvailable = gui.Available
	runGUI       = gui.Run
)

const (
	missingArgsErr = ""
	invalidCodeErr = "Invalid error code"
)

func report(ctx *cli.Context) error {
	if ctx.Bool("version") {
		return common.GetVersion(ctx)
	}
	args := ctx.Args()
	if len(args) < 3 {
		return cli.NewExitError(missingArgsErr, 1)
	}
	code, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return cli.NewExitError(invalidCodeErr, 1)
	}
	rec := crash.Build(args[0], int(code), strings.Join(args[2:], " "), now())
	win := layout.Build(rec.Severity(), rec)

	if ctx.Bool("json") {
		return writeJSON(ctx.App.Writer, rec, win)
	}

	cfg, cfgErr := config.LoadWith(context.Background(), env)
	if cfgErr != nil {
		cfg = config.Default()
	}
	log := logger.NewZeroLogger(stderr, cfg.LogLevel)
	defer log.Close()
	if cfgErr != nil {
		log.Warning("Ignoring invalid configuration: %v", cfgErr)
	}

	var sub dispatch.Submitter
	if cfgErr != nil && collectorRequested() {
		// a collector was asked for, so never fall back to the local stub
		log.Error("Crash report uploads disabled: %v", cfgErr)
		sub = brokenSubmitter{err: cfgErr}
	} else {
		sub = newSubmitter(cfg, ctx.App.Version, log)
	}

	d := dispatch.New(rec, dispatch.Options{
		SupportURL: cfg.SupportURL,
		Open:       openURL,
		Submitter:  sub,
		Timeout:    cfg.SubmitTimeout,
		Logger:     log,
	})

	if !ctx.Bool("console") {
		if guiAvailable() {
			err := runGUI(win, d, gui.Options{Icon: loadIcon()})
			if !errors.Is(err, gui.ErrUnavailable) {
				return err
			}
		}
		log.Info("No display available, showing the report on the console")
	}
	return tui.New(stdin, stdout, log).Run(win, d)
}

// newSubmitter returns nil when no collector is configured, which keeps
// the local acknowledgment.
func newSubmitter(cfg *config.Config, version string, log logger.Logger) dispatch.Submitter {
	if !cfg.Submits() {
		return nil
	}
	c, err := submit.New(submit.Options{
		Endpoint: cfg.Endpoint,
		Token:    cfg.Token,
		Proxy:    cfg.Proxy,
		Version:  version,
	})
	if err != nil {
		log.Error("Crash report uploads disabled: %v", err)
		return brokenSubmitter{err: err}
	}
	return c
}

// collectorRequested reports whether the environment names a collector,
// valid or not.
func collectorRequested() bool {
	v, ok := env.Lookup(rootcommon.EndpointEnv)
	return ok && strings.TrimSpace(v) != ""
}

// brokenSubmitter reports a configuration problem on every upload.
type brokenSubmitter struct {
	err error
}

func (b brokenSubmitter) Submit(context.Context, crash.Record) (string, error) {
	return "", b.err
}

func loadIcon() *icon.Icon {
	exe, err := executable()
	if err != nil {
		return nil
	}
	ic, ok := icon.Load(fs, exe)
	if !ok {
		return nil
	}
	return &ic
}

type reportDump struct {
	Report   crash.Record   `json:"report"`
	Severity crash.Severity `json:"severity"`
	Window   layout.Window  `json:"window"`
}

func writeJSON(w io.Writer, rec crash.Record, win layout.Window) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(reportDump{Report: rec, Severity: rec.Severity(), Window: win})
}
