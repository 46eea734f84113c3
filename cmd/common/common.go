// Package common provides helpers shared by the crash reporter's CLI
// actions: version output and usage error handling.
package common

import (
	"fmt"

	"github.com/urfave/cli"
)

// VersionCmdStr holds the formatted version string printed for --version.
// It is populated by Execute with build-time information including version,
// platform, build date, and commit hash.
var VersionCmdStr string

// GetVersion prints the version string to the app's writer.
func GetVersion(ctx *cli.Context) error {
	fmt.Fprintln(ctx.App.Writer, VersionCmdStr)
	return nil
}

// UsageErrorCallback turns a flag parsing error into an exit error with
// status 1 so the diagnostic lands on stderr. It is meant to be used as the
// OnUsageError callback of cli.App.
func UsageErrorCallback(ctx *cli.Context, err error, _ bool) error {
	return cli.NewExitError(fmt.Sprintf("%s: %s\nUsage: %s", ctx.App.HelpName, err.Error(), ctx.App.UsageText), 1)
}
