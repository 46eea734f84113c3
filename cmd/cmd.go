package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/ascendara/crashreporter/cmd/common"
)

// BuildArgs carries the build-time values stamped into the binary.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var reportFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "console",
		Usage: consoleUsage,
	},
	cli.BoolFlag{
		Name:  "json",
		Usage: jsonUsage,
	},
	cli.BoolFlag{
		Name:  "version",
		Usage: versionUsage,
	},
}

// Execute runs the reporter. Options must come before the three positional
// arguments; everything after the first positional is left untouched.
func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:         "crashreporter",
		HelpName:     "crashreporter",
		Usage:        "Ascendara crash reporter",
		Version:      fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:    "crashreporter [--console|--json] <tool> <error code> <message>",
		Description:  DESCRIPTION,
		OnUsageError: common.UsageErrorCallback,
		Action:       report,
		Flags:        reportFlags,
		Writer:       stdout,
		ErrWriter:    stderr,
		HideHelp:     true,
		HideVersion:  true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
