// Package cli provides the command-line interface for daygrid.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	LogOutputFile string `short:"l" long:"log-output-file" description:"write the log as JSON to this file" value-name:"<file>"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify the log to stderr"`
	LogLevel      string `long:"log-level" description:"the minimum level to log" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"warn"`

	ArrangeCommand   ArrangeCommand   `command:"arrange" subcommands-optional:"true"`
	AddCommand       AddCommand       `command:"add" subcommands-optional:"true"`
	ImportCommand    ImportCommand    `command:"import" subcommands-optional:"true"`
	SummarizeCommand SummarizeCommand `command:"summarize" subcommands-optional:"true"`
	TimesheetCommand TimesheetCommand `command:"timesheet" subcommands-optional:"true"`
	VersionCommand   VersionCommand   `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
