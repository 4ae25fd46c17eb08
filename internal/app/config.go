package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/gridcalc/internal/arith"
)

// AdvertisedOperations lists the operation names the command line accepts,
// in the order they appear in help text. "power" has no implementation and
// fails at dispatch time.
var AdvertisedOperations = []string{"add", "subtract", "multiply", "divide", "power"}

// ErrInvalidOperation is returned for an operation name that is not in
// AdvertisedOperations.
var ErrInvalidOperation = errors.New("invalid operation")

// CheckOperation rejects names outside AdvertisedOperations.
func CheckOperation(name string) error {
	if slices.Contains(AdvertisedOperations, name) {
		return nil
	}
	return fmt.Errorf("%w %q (choose from %s)", ErrInvalidOperation, name, strings.Join(AdvertisedOperations, ", "))
}

// Log formats accepted by Config.LogFormat.
const (
	LogFormatAuto = "auto"
	LogFormatTint = "tint"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
// Exactly one of Operation or BatchPath is set.
type Config struct {
	Operation string
	Operands  []arith.Number
	BatchPath string // .hcl file or directory

	// Strict turns handled arithmetic errors into a failed run.
	Strict bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch {
	case cfg.Operation == "" && cfg.BatchPath == "":
		return nil, errors.New("either an operation or a batch file is required")
	case cfg.Operation != "" && cfg.BatchPath != "":
		return nil, errors.New("an operation and a batch file cannot be combined")
	case cfg.Operation != "" && len(cfg.Operands) != 2:
		return nil, fmt.Errorf("operation %q needs exactly two operands, got %d", cfg.Operation, len(cfg.Operands))
	}

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = LogFormatAuto
	case LogFormatAuto, LogFormatTint, LogFormatText, LogFormatJSON:
	default:
		return nil, fmt.Errorf("invalid log-format %q", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "warn"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q", cfg.LogLevel)
	}

	return &cfg, nil
}
