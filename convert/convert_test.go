package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinterop/qinterop/deck"
	"github.com/qinterop/qinterop/gate"
	"github.com/qinterop/qinterop/pow"
	"github.com/qinterop/qinterop/qasm"
	"github.com/qinterop/qinterop/unitary"
)

func TestDetect(t *testing.T) {
	lib, err := Detect(qasm.New(1, 0))
	require.NoError(t, err)
	assert.Equal(t, QASM, lib)

	lib, err = Detect(deck.New(1, 0))
	require.NoError(t, err)
	assert.Equal(t, Deck, lib)

	lib, err = Detect(pow.New())
	require.NoError(t, err)
	assert.Equal(t, Pow, lib)

	_, err = Detect(42)
	assert.Error(t, err)
	_, err = Detect(nil)
	assert.Error(t, err)
}

func TestMeasureApplyChecksWires(t *testing.T) {
	for _, lib := range Libraries() {
		t.Run(string(lib), func(t *testing.T) {
			table, err := NewTable(lib)
			require.NoError(t, err)
			h, err := table.ToNative(gate.MustNew(gate.Measure))
			require.NoError(t, err)
			native := table.NewNative(1, 1)

			assert.Error(t, h.Apply(native, []int{0}, nil))
			assert.Error(t, h.Apply(native, nil, []int{0}))
			assert.NoError(t, h.Apply(native, []int{0}, []int{0}))
		})
	}
}

func TestLibraryOrder(t *testing.T) {
	assert.Equal(t, unitary.LittleEndian, QASM.Order())
	assert.Equal(t, unitary.BigEndian, Deck.Order())
	assert.Equal(t, unitary.LittleEndian, Pow.Order())
}

// emitting a spec into a fresh native circuit and classifying it back must
// reproduce the spec for every kind the library holds natively.
func TestRoundTripSharedGates(t *testing.T) {
	specs := []*gate.Spec{
		gate.MustNew(gate.H),
		gate.MustNew(gate.X),
		gate.MustNew(gate.S),
		gate.MustNew(gate.Tdg),
		gate.MustNew(gate.RX, math.Pi/4),
		gate.MustNew(gate.RZ, 0.5),
		gate.MustNew(gate.P, 0.25),
		gate.MustNew(gate.Swap),
		gate.MustNew(gate.X).Control(1),
		gate.MustNew(gate.Z).Control(1),
	}
	qubitsFor := func(s *gate.Spec) []int {
		if s.Qubits == 2 {
			return []int{0, 1}
		}
		return []int{0}
	}

	for _, lib := range Libraries() {
		t.Run(string(lib), func(t *testing.T) {
			table, err := NewTable(lib)
			require.NoError(t, err)
			for _, spec := range specs {
				t.Run(spec.String(), func(t *testing.T) {
					h, err := table.ToNative(spec)
					require.NoError(t, err)

					native := table.NewNative(2, 0)
					require.NoError(t, h.Apply(native, qubitsFor(spec), nil))

					instrs, err := Instructions(native)
					require.NoError(t, err)
					require.Len(t, instrs, 1)

					back, qubits, clbits, err := table.FromNative(instrs[0])
					require.NoError(t, err)
					assert.Equal(t, spec.BaseKind(), back.BaseKind())
					assert.Equal(t, spec.Controls, back.Controls)
					assert.Equal(t, qubitsFor(spec), qubits)
					assert.Empty(t, clbits)
					if len(spec.Params) > 0 {
						require.Len(t, back.Params, len(spec.Params))
						for i := range spec.Params {
							assert.InDelta(t, spec.Params[i], back.Params[i], 1e-12)
						}
					}
				})
			}
		})
	}
}

func TestMeasureRoundTrip(t *testing.T) {
	spec := gate.MustNew(gate.Measure)
	for _, lib := range Libraries() {
		t.Run(string(lib), func(t *testing.T) {
			table, err := NewTable(lib)
			require.NoError(t, err)
			h, err := table.ToNative(spec)
			require.NoError(t, err)

			native := table.NewNative(1, 1)
			require.NoError(t, h.Apply(native, []int{0}, []int{0}))

			instrs, err := Instructions(native)
			require.NoError(t, err)
			require.Len(t, instrs, 1)
			back, qubits, clbits, err := table.FromNative(instrs[0])
			require.NoError(t, err)
			assert.Equal(t, gate.Measure, back.Kind)
			assert.Equal(t, []int{0}, qubits)
			assert.Equal(t, []int{0}, clbits)
		})
	}
}

func TestUnsupportedGates(t *testing.T) {
	tests := []struct {
		lib  Library
		spec *gate.Spec
	}{
		{QASM, gate.MustNew(gate.ISwap)},
		{QASM, gate.MustNew(gate.SXdg)},
		{QASM, gate.MustNew(gate.DCX)},
		{Deck, gate.MustNew(gate.U3, 0.1, 0.2, 0.3)},
		{Deck, gate.MustNew(gate.ISwap)},
		{Deck, gate.MustNew(gate.X).Control(2)},
		{Deck, gate.MustNew(gate.Swap).Control(1)},
		{Pow, gate.MustNew(gate.U2, 0.1, 0.2)},
		{Pow, gate.MustNew(gate.DCX)},
		{Pow, gate.MustNew(gate.X).Control(2)},
	}
	for _, tt := range tests {
		t.Run(string(tt.lib)+"/"+tt.spec.String(), func(t *testing.T) {
			table, err := NewTable(tt.lib)
			require.NoError(t, err)
			_, err = table.ToNative(tt.spec)
			var unsupported *UnsupportedGateError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.spec.BaseKind(), unsupported.Kind)
			assert.Equal(t, tt.lib, unsupported.Library)
		})
	}
}

func TestQASMControlledNames(t *testing.T) {
	table, err := NewTable(QASM)
	require.NoError(t, err)

	c := qasm.New(3, 0)
	ccx, err := table.ToNative(gate.MustNew(gate.X).Control(2))
	require.NoError(t, err)
	require.NoError(t, ccx.Apply(c, []int{0, 1, 2}, nil))

	cswap, err := table.ToNative(gate.MustNew(gate.Swap).Control(1))
	require.NoError(t, err)
	require.NoError(t, cswap.Apply(c, []int{0, 1, 2}, nil))

	require.Len(t, c.Statements, 2)
	assert.Equal(t, "ccx", c.Statements[0].Name)
	assert.Equal(t, "cswap", c.Statements[1].Name)
}

func TestShape(t *testing.T) {
	nq, nb, err := Shape(qasm.New(3, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, nq)
	assert.Equal(t, 2, nb)

	// pow declares no register; clbit count is derived from measures
	c := pow.New()
	require.NoError(t, c.Append(pow.Measure{Bit: 4}, 0))
	nq, nb, err = Shape(c)
	require.NoError(t, err)
	assert.Equal(t, 0, nq)
	assert.Equal(t, 5, nb)
}

func TestSetPhase(t *testing.T) {
	p := pow.New()
	assert.True(t, (&Table{lib: Pow}).SetPhase(p, 1.5))
	assert.Equal(t, 1.5, p.GlobalPhase)

	assert.False(t, (&Table{lib: QASM}).SetPhase(qasm.New(1, 0), 1.5))
	assert.False(t, (&Table{lib: Deck}).SetPhase(deck.New(1, 0), 1.5))
}
