package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/gridcalc/internal/ctxlog"
)

// Validate checks the registry against the operation names the command line
// advertises. Advertised names without an implementation are only logged at
// debug level, since they fail when requested; registered operations that are not advertised are an error.
func (r *Registry) Validate(ctx context.Context, advertised []string) error {
	logger := ctxlog.FromContext(ctx)

	known := make(map[string]struct{}, len(advertised))
	for _, name := range advertised {
		known[name] = struct{}{}
		if _, ok := r.operations[name]; !ok {
			logger.Debug("Operation is advertised but has no implementation.", "operation", name)
		}
	}

	var errs []string
	for _, name := range r.Names() {
		if _, ok := known[name]; !ok {
			errs = append(errs, fmt.Sprintf("operation '%s' is registered but not advertised", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
