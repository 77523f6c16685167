package deck

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGateChecks(t *testing.T) {
	c := New(2, 1)

	require.NoError(t, c.AddGate(Gate{Type: "H", Target: 0, Control: -1, Clbit: -1}))
	require.NoError(t, c.AddGate(Gate{Type: "CX", Control: 0, Target: 1, Clbit: -1}))
	require.NoError(t, c.AddGate(Gate{Type: "RZ", Target: 1, Control: -1, Params: []float64{0.5}, Clbit: -1}))
	require.NoError(t, c.AddGate(Gate{Type: "MEASURE", Target: 0, Control: -1, Clbit: 0}))

	tests := []struct {
		name string
		g    Gate
	}{
		{"unknown type", Gate{Type: "ISWAP", Control: 0, Target: 1, Clbit: -1}},
		{"target out of range", Gate{Type: "X", Target: 2, Control: -1, Clbit: -1}},
		{"control equals target", Gate{Type: "CX", Control: 1, Target: 1, Clbit: -1}},
		{"control out of range", Gate{Type: "CZ", Control: 5, Target: 0, Clbit: -1}},
		{"missing param", Gate{Type: "RX", Target: 0, Control: -1, Clbit: -1}},
		{"control on one-qubit gate", Gate{Type: "H", Target: 0, Control: 1, Clbit: -1}},
		{"measure clbit out of range", Gate{Type: "MEASURE", Target: 0, Control: -1, Clbit: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, c.AddGate(tt.g))
		})
	}
}

func TestStateVectorBell(t *testing.T) {
	s := NewStateVector(2)
	s.ApplyGate("H", 0, -1, nil)
	s.ApplyGate("CX", 1, 0, nil)

	h := complex(1/math.Sqrt2, 0)
	want := []complex128{h, 0, 0, h}
	for i, w := range want {
		assert.InDelta(t, 0, cmplx.Abs(s.Amplitudes[i]-w), 1e-12, "amplitude %d", i)
	}
}

func TestStateVectorPhaseGates(t *testing.T) {
	// S then SDG is the identity on any state
	s := NewStateVector(1)
	s.ApplyGate("H", 0, -1, nil)
	s.ApplyGate("S", 0, -1, nil)
	s.ApplyGate("SDG", 0, -1, nil)
	s.ApplyGate("H", 0, -1, nil)
	assert.InDelta(t, 1, cmplx.Abs(s.Amplitudes[0]), 1e-12)

	// T twice is S
	a := NewStateVector(1)
	a.ApplyGate("H", 0, -1, nil)
	a.ApplyGate("T", 0, -1, nil)
	a.ApplyGate("T", 0, -1, nil)
	b := NewStateVector(1)
	b.ApplyGate("H", 0, -1, nil)
	b.ApplyGate("S", 0, -1, nil)
	for i := range a.Amplitudes {
		assert.InDelta(t, 0, cmplx.Abs(a.Amplitudes[i]-b.Amplitudes[i]), 1e-12)
	}
}

func TestStateVectorSwap(t *testing.T) {
	s := NewStateVector(2)
	s.ApplyGate("X", 0, -1, nil)
	s.ApplyGate("SWAP", 1, 0, nil)
	assert.InDelta(t, 1, cmplx.Abs(s.Amplitudes[2]), 1e-12)
}
