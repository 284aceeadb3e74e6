// Package cli parses command-line arguments into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/anvilgo/internal/app"
)

// ExitError carries a specific process exit code alongside its message.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// propertyFlags collects repeatable -D name=value user-property overrides.
type propertyFlags map[string]string

func (p propertyFlags) String() string {
	return fmt.Sprintf("%d properties", len(p))
}

func (p propertyFlags) Set(v string) error {
	name, value, ok := strings.Cut(v, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", v)
	}
	p[name] = value
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating the program should exit cleanly (help requested), or
// an ExitError for invalid input.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("anvilgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
anvilgo - a declarative build automation engine.

Usage:
  anvilgo [options] [TARGET...]

Arguments:
  TARGET
    Targets to execute, in order. Defaults to the project's default target.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("file", "build.hcl", "Path to the build file or a directory of .hcl files.")
	fFlag := flagSet.String("f", "", "Path to the build file (shorthand).")
	listFlag := flagSet.Bool("list", false, "List the project's targets and exit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Log level: 'debug', 'info', 'warn', or 'error'.")
	skipCheckFlag := flagSet.Bool("skip-graph-check", false, "Skip the full-graph validation pass after sorting.")
	props := propertyFlags{}
	flagSet.Var(props, "D", "Set a user property (name=value). Repeatable; wins over build-file properties.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *fileFlag
	if *fFlag != "" {
		path = *fFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg, err := app.NewConfig(app.Config{
		BuildFile:      path,
		Targets:        flagSet.Args(),
		UserProperties: props,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
		ListTargets:    *listFlag,
		SkipGraphCheck: *skipCheckFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}
