package draw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinterop/qinterop/gate"
	"github.com/qinterop/qinterop/ir"
)

func TestCircuitBell(t *testing.T) {
	c := &ir.Circuit{
		NumQubits: 2,
		NumClbits: 2,
		Instructions: []ir.Instruction{
			{Gate: gate.MustNew(gate.H), Qubits: []int{0}},
			{Gate: gate.MustNew(gate.X).Control(1), Qubits: []int{0, 1}},
			{Gate: gate.MustNew(gate.Measure), Qubits: []int{0}, Clbits: []int{0}},
			{Gate: gate.MustNew(gate.Measure), Qubits: []int{1}, Clbits: []int{1}},
		},
	}
	out := Circuit(c)

	assert.Contains(t, out, "q[0]")
	assert.Contains(t, out, "q[1]")
	assert.Contains(t, out, "┤H├")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "⊕")
	assert.Contains(t, out, "M")
	assert.Contains(t, out, "c2")
	assert.Contains(t, out, "╩0")
	assert.Contains(t, out, "╩1")

	// one row per qubit, a connector row between them, one classical row
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
}

func TestCircuitParams(t *testing.T) {
	c := &ir.Circuit{
		NumQubits: 1,
		Instructions: []ir.Instruction{
			{Gate: gate.MustNew(gate.RZ, 0.5), Qubits: []int{0}},
		},
	}
	out := Circuit(c)
	assert.Contains(t, out, "RZ(0.5)")
}

func TestCircuitSwapAndCZ(t *testing.T) {
	c := &ir.Circuit{
		NumQubits: 3,
		Instructions: []ir.Instruction{
			{Gate: gate.MustNew(gate.Swap), Qubits: []int{0, 2}},
			{Gate: gate.MustNew(gate.Z).Control(1), Qubits: []int{0, 1}},
		},
	}
	out := Circuit(c)

	assert.Contains(t, out, "×")
	// the middle wire shows a crossing, not a gate
	assert.Contains(t, out, "┼")
}

func TestCircuitEmpty(t *testing.T) {
	require.Equal(t, "", Circuit(&ir.Circuit{}))
}
