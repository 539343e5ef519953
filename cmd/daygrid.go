package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/beldram/daygrid/internal/control/cli"
)

// MAIN
func main() {
	parser := flags.NewParser(&cli.Opts, flags.Default)
	parser.SubcommandsOptional = true

	// the global logger has to be set up from the global flags before the
	// chosen command runs
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		return command.Execute(args)
	}

	_, err := parser.Parse()
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error (e.g. flag parsing):\n > %s\n", err.Error())
		os.Exit(1)
	}

	if parser.Active == nil {
		if cli.Opts.Version {
			cmd := cli.VersionCommand{}
			if err := cmd.Execute([]string{}); err != nil {
				fmt.Fprintf(os.Stderr, "exited with error:\n > %s\n", err.Error())
				os.Exit(1)
			}
			return
		}
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}
}

// setupLogging configures the global logger: JSON to a file if requested,
// prettified to stderr if requested, both if both, otherwise none.
func setupLogging() error {
	level, err := zerolog.ParseLevel(cli.Opts.LogLevel)
	if err != nil {
		return fmt.Errorf("could not parse log level '%s' (%w)", cli.Opts.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	writers := make([]io.Writer, 0, 2)
	if cli.Opts.LogOutputFile != "" {
		file, err := os.OpenFile(cli.Opts.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging (%w)", cli.Opts.LogOutputFile, err)
		}
		writers = append(writers, file)
	}
	if cli.Opts.LogPretty {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	switch len(writers) {
	case 0:
		log.Logger = zerolog.Nop()
	case 1:
		log.Logger = log.Output(writers[0])
	default:
		log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
	}

	return nil
}
