package qasm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bellText = `OPENQASM 2.0;
include "qelib1.inc";
qreg q[2];
creg c[2];
h q[0];
cx q[0],q[1];
measure q[0] -> c[0];
measure q[1] -> c[1];
`

func TestParseBell(t *testing.T) {
	c, err := Parse(bellText)
	require.NoError(t, err)

	assert.Equal(t, 2, c.NumQubits)
	assert.Equal(t, 2, c.NumClbits)
	require.Len(t, c.Statements, 4)
	assert.Equal(t, Statement{Name: "h", Qubits: []int{0}}, c.Statements[0])
	assert.Equal(t, Statement{Name: "cx", Qubits: []int{0, 1}}, c.Statements[1])
	assert.Equal(t, Statement{Name: "measure", Qubits: []int{0}, Clbits: []int{0}}, c.Statements[2])
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"0.25", 0.25},
		{"-1.5", -1.5},
		{"pi", math.Pi},
		{"-pi", -math.Pi},
		{"pi/2", math.Pi / 2},
		{"-pi/4", -math.Pi / 4},
		{"2*pi", 2 * math.Pi},
		{"3*pi/4", 3 * math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			c, err := Parse("OPENQASM 2.0;\nqreg q[1];\nrz(" + tt.expr + ") q[0];\n")
			require.NoError(t, err)
			require.Len(t, c.Statements, 1)
			assert.InDelta(t, tt.want, c.Statements[0].Params[0], 1e-12)
		})
	}
}

func TestParseSkipsCommentsAndBarriers(t *testing.T) {
	c, err := Parse(`OPENQASM 2.0;
// a bell pair
qreg q[2];
h q[0]; // superpose
barrier q[0],q[1];
cx q[0],q[1];
`)
	require.NoError(t, err)
	require.Len(t, c.Statements, 2)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing header", "qreg q[1];\nh q[0];\n"},
		{"wrong version", "OPENQASM 3.0;\nqreg q[1];\n"},
		{"unknown gate", "OPENQASM 2.0;\nqreg q[1];\nfoo q[0];\n"},
		{"qubit out of range", "OPENQASM 2.0;\nqreg q[1];\nh q[3];\n"},
		{"clbit out of range", "OPENQASM 2.0;\nqreg q[1];\ncreg c[1];\nmeasure q[0] -> c[4];\n"},
		{"wrong qubit count", "OPENQASM 2.0;\nqreg q[2];\ncx q[0];\n"},
		{"wrong param count", "OPENQASM 2.0;\nqreg q[1];\nrz q[0];\n"},
		{"malformed param", "OPENQASM 2.0;\nqreg q[1];\nrz(tau) q[0];\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	c, err := Parse(bellText)
	require.NoError(t, err)
	again, err := Parse(c.Text())
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestAddGateChecks(t *testing.T) {
	c := New(2, 1)
	require.NoError(t, c.AddGate("h", nil, 0))
	require.NoError(t, c.AddGate("CX", nil, 0, 1))
	require.NoError(t, c.AddMeasure(1, 0))

	assert.Error(t, c.AddGate("iswap", nil, 0, 1))
	assert.Error(t, c.AddGate("h", nil, 2))
	assert.Error(t, c.AddGate("rz", nil, 0))
	assert.Error(t, c.AddMeasure(0, 1))
}
