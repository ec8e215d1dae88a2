package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/embeddedci/boardcat/internal/app"
)

// DatabaseModeEnvVar names the environment variable providing the
// default database mode when --database-mode is not given.
const DatabaseModeEnvVar = "BOARDCAT_DATABASE_MODE"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("boardcat", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
boardcat - Board database lookup and build target attribute resolution.

Usage:
  boardcat [options] COMMAND [ARGS]

Commands:
  list
    List every board in the selected database.
  lookup
    Find one board by --product-code, or by --slug and --target-type.
  resolve TARGET_NAME
    Flatten the attribute inheritance hierarchy for a build target from
    targets.json and print the result as JSON.

Options:
`)
		flagSet.PrintDefaults()
	}

	targetsJSONFlag := flagSet.String("targets-json", "", "Path to targets.json, or a directory to search for it.")
	databaseModeFlag := flagSet.String("database-mode", "", "Database mode: 'auto', 'offline' or 'online'. Defaults to $"+DatabaseModeEnvVar+", then 'auto'.")
	productCodeFlag := flagSet.String("product-code", "", "Product code to look up.")
	slugFlag := flagSet.String("slug", "", "Board slug to look up (paired with --target-type).")
	targetTypeFlag := flagSet.String("target-type", "", "Target type to look up, normally 'platform' or 'module'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	command := flagSet.Arg(0)
	commandArgs := flagSet.Args()[1:]

	databaseMode := *databaseModeFlag
	if databaseMode == "" {
		databaseMode = os.Getenv(DatabaseModeEnvVar)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Command:         command,
		Args:            commandArgs,
		TargetsJSONPath: *targetsJSONFlag,
		DatabaseMode:    databaseMode,
		ProductCode:     *productCodeFlag,
		Slug:            *slugFlag,
		TargetType:      *targetTypeFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "command", command)
	return config, false, nil
}
