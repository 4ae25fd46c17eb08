package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/gridcalc/internal/app"
	"github.com/specialistvlad/gridcalc/internal/cli"
	"github.com/specialistvlad/gridcalc/internal/hcl"
)

// main is the entrypoint for the gridcalc application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Results go to outW, logs to logW.
func run(outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// NewApp panics on programmer errors in the module wiring; report them
	// as a normal failure instead of a stack trace.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	calcApp := app.NewApp(outW, logW, appConfig, hcl.NewLoader())

	if err := calcApp.Run(context.Background()); err != nil {
		if errors.Is(err, app.ErrCalculationFailed) {
			return &cli.ExitError{Code: cli.ExitCalculation, Message: err.Error()}
		}
		if errors.Is(err, app.ErrInvalidOperation) {
			return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
		}
		return err
	}
	return nil
}
