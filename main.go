package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/ascendara/crashreporter/cmd"
)

var (
	version   string
	commit    string
	date      string
	buildType string = "unclassified"
)

var (
	osExit           = os.Exit
	errOut io.Writer = os.Stderr
)

func main() {
	osExit(runMain(os.Args, func(args []string) error {
		return cmd.Execute(args, cmd.BuildArgs{
			Version:   version,
			Commit:    commit,
			Date:      date,
			BuildType: buildType,
		})
	}))
}

func runMain(args []string, execute func([]string) error) int {
	err := execute(args)
	if err == nil {
		return 0
	}
	// exit errors have already been reported by the cli package
	if ec, ok := err.(cli.ExitCoder); ok {
		return ec.ExitCode()
	}
	fmt.Fprintf(errOut, "crashreporter: %s\n", err.Error())
	return 1
}
