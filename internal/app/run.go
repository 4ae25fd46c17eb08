package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/gridcalc/internal/arith"
	"github.com/specialistvlad/gridcalc/internal/ctxlog"
)

var (
	// ErrNotImplemented is returned when an advertised operation has no
	// registered implementation.
	ErrNotImplemented = errors.New("not implemented")

	// ErrCalculationFailed is returned by Run in strict mode when at least
	// one calculation ended in an arithmetic error.
	ErrCalculationFailed = errors.New("calculation failed")
)

// Run evaluates the configured operation or batch file and writes one result
// line per calculation. Arithmetic errors are printed as "Error: <message>"
// and only fail the run in strict mode; any other error is returned.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var err error
	if a.config.BatchPath != "" {
		err = a.runBatch(ctx)
	} else {
		err = a.runSingle(ctx)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

func (a *App) runSingle(ctx context.Context) error {
	cfg := a.config
	result, err := a.evaluate(ctx, cfg.Operation, cfg.Operands[0], cfg.Operands[1])
	if err != nil {
		if _, ok := arith.KindOf(err); !ok {
			return err
		}
		fmt.Fprintf(a.outW, "Error: %s\n", err)
		if cfg.Strict {
			return fmt.Errorf("%w: %s", ErrCalculationFailed, err)
		}
		return nil
	}

	fmt.Fprintf(a.outW, "Result: %s\n", result)
	return nil
}

func (a *App) runBatch(ctx context.Context) error {
	model, err := a.loader.Load(ctx, a.config.BatchPath)
	if err != nil {
		return fmt.Errorf("failed to load batch: %w", err)
	}
	if len(model.Calculations) == 0 {
		a.logger.Warn("No calculations found in batch, nothing to do.", "path", a.config.BatchPath)
		return nil
	}

	// Unknown names are input errors: reject them before anything is printed.
	for _, calc := range model.Calculations {
		if err := CheckOperation(calc.Operation); err != nil {
			return fmt.Errorf("%s: calculation %q: %w", calc.Source, calc.Name, err)
		}
	}

	failed := 0
	for _, calc := range model.Calculations {
		result, err := a.evaluate(ctx, calc.Operation, calc.A, calc.B)
		if err != nil {
			if _, ok := arith.KindOf(err); !ok {
				return fmt.Errorf("%s: calculation %q: %w", calc.Source, calc.Name, err)
			}
			failed++
			fmt.Fprintf(a.outW, "%s: Error: %s\n", calc.Name, err)
			continue
		}
		fmt.Fprintf(a.outW, "%s: Result: %s\n", calc.Name, result)
	}

	a.logger.Info("Batch finished.", "calculations", len(model.Calculations), "failed", failed)
	if a.config.Strict && failed > 0 {
		return fmt.Errorf("%w: %d of %d calculations failed", ErrCalculationFailed, failed, len(model.Calculations))
	}
	return nil
}

// evaluate dispatches a single operation through the registry.
func (a *App) evaluate(ctx context.Context, operation string, x, y arith.Number) (arith.Number, error) {
	logger := ctxlog.FromContext(ctx)

	op, ok := a.registry.Lookup(operation)
	if !ok {
		return arith.Number{}, fmt.Errorf("operation %q is %w", operation, ErrNotImplemented)
	}

	result, err := op(x, y)
	if err != nil {
		kind, _ := arith.KindOf(err)
		logger.Debug("Operation failed.", "operation", operation, "a", x, "b", y, "kind", kind, "error", err)
		return arith.Number{}, err
	}

	logger.Debug("Operation evaluated.", "operation", operation, "a", x, "b", y, "result", result)
	return result, nil
}
