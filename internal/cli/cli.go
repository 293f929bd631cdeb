package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/tfconsole/internal/app"
)

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
	flagSet := flag.NewFlagSet("tfconsole", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
tfconsole - a local web console for configuring and running terraform templates.

Usage:
  tfconsole [options] [TEMPLATE_ROOT]

Arguments:
  TEMPLATE_ROOT
    Directory containing template directories (each holding a terraform.tfvars),
    or a single template directory itself.

Options:
`)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("root", "", "Path to the template root directory.")
	rFlag := flagSet.String("r", "", "Path to the template root directory (shorthand).")
	listenFlag := flagSet.String("listen", "", "Address for the console API server. Default :8080.")
	binaryFlag := flagSet.String("terraform-bin", "", "Provisioning tool binary to invoke. Default terraform.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	root := ""
	if *rootFlag != "" {
		root = *rootFlag
	} else if *rFlag != "" {
		root = *rFlag
	} else if flagSet.NArg() > 0 {
		root = flagSet.Arg(0)
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

	config, err := app.NewConfig(app.Config{
		TemplateRoot:    root,
		Listen:          *listenFlag,
		TerraformBinary: *binaryFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
