package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gridcalc/internal/config"
	"github.com/specialistvlad/gridcalc/internal/ctxlog"
	"github.com/specialistvlad/gridcalc/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL batch loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the schema of a batch file. Unknown blocks and attributes are
// reported by gohcl.
type fileRoot struct {
	Calculations []*calculationBlock `hcl:"calculation,block"`
}

// calculationBlock is a raw `calculation "name" { ... }` block.
type calculationBlock struct {
	Name      string         `hcl:"name,label"`
	Operation string         `hcl:"operation"`
	A         hcl.Expression `hcl:"a"`
	B         hcl.Expression `hcl:"b"`
}

// Load parses every .hcl file reachable from paths and returns the
// calculations in declaration order. Any parse, decode or operand error
// aborts the whole load.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %s", strings.Join(paths, ", "))
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	declared := make(map[string]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Calculations {
			calc, err := l.translateCalculation(block)
			if err != nil {
				return nil, err
			}
			if first, dup := declared[calc.Name]; dup {
				return nil, fmt.Errorf("%s: calculation %q already declared at %s", calc.Source, calc.Name, first)
			}
			declared[calc.Name] = calc.Source
			model.Calculations = append(model.Calculations, calc)
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "calculations", len(model.Calculations))
	return model, nil
}

// translateCalculation evaluates both operands and validates the block.
func (l *Loader) translateCalculation(block *calculationBlock) (*config.Calculation, error) {
	rng := block.A.Range()
	source := fmt.Sprintf("%s:%d,%d", rng.Filename, rng.Start.Line, rng.Start.Column)

	if block.Name == "" {
		return nil, fmt.Errorf("%s: calculation name must not be empty", source)
	}
	if strings.TrimSpace(block.Operation) == "" {
		return nil, fmt.Errorf("%s: calculation %q: operation must not be empty", source, block.Name)
	}

	a, err := evalOperand(block.A)
	if err != nil {
		return nil, fmt.Errorf("%s: calculation %q: operand a: %w", source, block.Name, err)
	}
	b, err := evalOperand(block.B)
	if err != nil {
		return nil, fmt.Errorf("%s: calculation %q: operand b: %w", source, block.Name, err)
	}

	return &config.Calculation{
		Name:      block.Name,
		Operation: block.Operation,
		A:         a,
		B:         b,
		Source:    source,
	}, nil
}
