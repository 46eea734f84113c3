package cmd

const DESCRIPTION = `
Shows a report window when one of the Ascendara tools stops working.
The tool that failed, its error code and the raw error message are
passed as arguments; the window explains what happened and offers to
upload the report, open the support channel or close.

Without a display the report is shown on the terminal instead.
`

const (
	consoleUsage = "show the report on the terminal even when a display is available"
	jsonUsage    = "print the resolved report and window description as JSON and exit"
	versionUsage = "print the version and exit"
)
