package arithmetic

import (
	"testing"

	"github.com/specialistvlad/gridcalc/internal/arith"
	"github.com/specialistvlad/gridcalc/internal/registry"
	"github.com/stretchr/testify/require"
)

func TestModule_Register(t *testing.T) {
	t.Parallel()

	r := registry.New()
	(&Module{}).Register(r)

	require.Equal(t, []string{"add", "divide", "multiply", "subtract"}, r.Names())

	cases := []struct {
		op   string
		want string
	}{
		{"add", "15"},
		{"subtract", "-5"},
		{"multiply", "50"},
		{"divide", "0.5"},
	}
	for _, tc := range cases {
		op, ok := r.Lookup(tc.op)
		require.True(t, ok, tc.op)

		got, err := op(arith.Int(5), arith.Int(10))
		require.NoError(t, err)
		require.Equal(t, tc.want, got.String(), tc.op)
	}
}
