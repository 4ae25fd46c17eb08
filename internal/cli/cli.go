package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/gridcalc/internal/app"
	"github.com/specialistvlad/gridcalc/internal/arith"
)

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridcalc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
gridcalc - A small command-line calculator.

Usage:
  gridcalc [options] OPERATION A B
  gridcalc [options] -file PATH

Arguments:
  OPERATION
    One of: %s.
  A, B
    The two numbers to operate on. Options must come before OPERATION.

Example:
  gridcalc add 5 3

Options:
`, strings.Join(app.AdvertisedOperations, ", "))
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("file", "", "Path to a .hcl batch file or a directory of them.")
	fFlag := flagSet.String("f", "", "Path to a .hcl batch file or a directory of them (shorthand).")
	strictFlag := flagSet.Bool("strict", false, "Exit with code 3 when a calculation fails with an arithmetic error.")
	logFormatFlag := flagSet.String("log-format", "auto", "Log output format. Options: 'auto', 'tint', 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	batchPath := *fileFlag
	if batchPath == "" {
		batchPath = *fFlag
	}
	positional := flagSet.Args()

	cfg := app.Config{
		BatchPath: batchPath,
		Strict:    *strictFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	}

	if batchPath != "" {
		if len(positional) > 0 {
			return nil, false, usageError("unexpected arguments with -file: %s", strings.Join(positional, " "))
		}
	} else {
		if len(positional) == 0 {
			flagSet.Usage()
			return nil, false, usageError("missing operation")
		}
		op, operands, err := parseCalculation(positional)
		if err != nil {
			return nil, false, err
		}
		cfg.Operation = op
		cfg.Operands = operands
	}
	slog.Debug("Mode determined.", "operation", cfg.Operation, "batch", cfg.BatchPath)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// parseCalculation validates OPERATION A B. Both numbers are parsed as
// floats, so the command line always produces float operands. Surrounding
// whitespace is ignored.
func parseCalculation(positional []string) (string, []arith.Number, error) {
	op := positional[0]
	if err := app.CheckOperation(op); err != nil {
		return "", nil, usageError("%s", err.Error())
	}

	numbers := positional[1:]
	if len(numbers) != 2 {
		return "", nil, usageError("expected exactly two numbers, got %d", len(numbers))
	}

	operands := make([]arith.Number, 0, len(numbers))
	for _, s := range numbers {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return "", nil, usageError("invalid number %q", s)
		}
		operands = append(operands, arith.Float(f))
	}

	return op, operands, nil
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}
