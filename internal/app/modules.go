package app

import (
	"github.com/specialistvlad/gridcalc/internal/registry"
	"github.com/specialistvlad/gridcalc/modules/arithmetic"
)

// coreModules is the definitive list of all modules that are compiled into
// the gridcalc binary.
var coreModules = []registry.Module{
	&arithmetic.Module{},
}
