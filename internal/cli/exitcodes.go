package cli

// Process exit codes.
const (
	ExitSuccess     = 0 // Success, including handled arithmetic errors outside strict mode
	ExitFailure     = 1 // Runtime failure (unimplemented operation, unreadable batch)
	ExitUsage       = 2 // Invalid arguments or flags
	ExitCalculation = 3 // Arithmetic error in strict mode
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
