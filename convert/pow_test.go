package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinterop/qinterop/gate"
	"github.com/qinterop/qinterop/pow"
)

// the exponent families overload several canonical kinds; classification must
// pick named gates only at exact parameter points and otherwise fall back to
// the algebraically exact rotation or phase family.
func TestClassifyExponentFamilies(t *testing.T) {
	tests := []struct {
		name     string
		g        pow.Gate
		wantKind gate.Kind
		wantArgs []float64
		phase    float64
	}{
		{"zpow 1 is Z", pow.ZPow{Exponent: 1}, gate.Z, nil, 0},
		{"zpow 1/2 is S", pow.ZPow{Exponent: 0.5}, gate.S, nil, 0},
		{"zpow -1/2 is Sdg", pow.ZPow{Exponent: -0.5}, gate.Sdg, nil, 0},
		{"zpow 1/4 is T", pow.ZPow{Exponent: 0.25}, gate.T, nil, 0},
		{"zpow -1/4 is Tdg", pow.ZPow{Exponent: -0.25}, gate.Tdg, nil, 0},
		{"zpow 0 is I", pow.ZPow{Exponent: 0}, gate.I, nil, 0},
		{"zpow generic is P", pow.ZPow{Exponent: 0.3}, gate.P, []float64{0.3 * math.Pi}, 0},
		{"zpow shifted is RZ", pow.ZPow{Exponent: 0.3, GlobalShift: -0.5}, gate.RZ, []float64{0.3 * math.Pi}, 0},
		{"zpow odd shift is P with phase", pow.ZPow{Exponent: 0.5, GlobalShift: 0.2}, gate.P, []float64{0.5 * math.Pi}, 0.5 * math.Pi * 0.2},
		{"xpow 1 is X", pow.XPow{Exponent: 1}, gate.X, nil, 0},
		{"xpow 1/2 is SX", pow.XPow{Exponent: 0.5}, gate.SX, nil, 0},
		{"xpow -1/2 is SXdg", pow.XPow{Exponent: -0.5}, gate.SXdg, nil, 0},
		{"xpow 0 is I", pow.XPow{Exponent: 0}, gate.I, nil, 0},
		{"xpow shifted is RX", pow.XPow{Exponent: 0.25, GlobalShift: -0.5}, gate.RX, []float64{0.25 * math.Pi}, 0},
		{"xpow generic is RX with phase", pow.XPow{Exponent: 0.25}, gate.RX, []float64{0.25 * math.Pi}, 0.25 * math.Pi * 0.5},
		{"ypow 1 is Y", pow.YPow{Exponent: 1}, gate.Y, nil, 0},
		{"ypow generic is RY with phase", pow.YPow{Exponent: 0.5}, gate.RY, []float64{0.5 * math.Pi}, 0.5 * math.Pi * 0.5},
		{"hpow 1 is H", pow.HPow{Exponent: 1}, gate.H, nil, 0},
		{"hpow 0 is I", pow.HPow{Exponent: 0}, gate.I, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wires := make([]int, tt.g.Span())
			for i := range wires {
				wires[i] = i
			}
			spec, qubits, clbits, err := classifyPow(pow.Op{Gate: tt.g, Wires: wires})
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, spec.BaseKind())
			assert.Equal(t, wires, qubits)
			assert.Empty(t, clbits)
			require.Len(t, spec.Params, len(tt.wantArgs))
			for i := range tt.wantArgs {
				assert.InDelta(t, tt.wantArgs[i], spec.Params[i], 1e-12)
			}
			assert.InDelta(t, tt.phase, spec.GlobalPhase, 1e-12)
		})
	}
}

func TestClassifyControlledFamilies(t *testing.T) {
	spec, _, _, err := classifyPow(pow.Op{Gate: pow.CXPow{Exponent: 1}, Wires: []int{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, gate.X, spec.BaseKind())
	assert.Equal(t, 1, spec.Controls)

	spec, _, _, err = classifyPow(pow.Op{Gate: pow.CZPow{Exponent: 1}, Wires: []int{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, gate.Z, spec.BaseKind())
	assert.Equal(t, 1, spec.Controls)

	// fractional CZPow is exactly a controlled phase
	spec, _, _, err = classifyPow(pow.Op{Gate: pow.CZPow{Exponent: 0.5}, Wires: []int{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, gate.P, spec.BaseKind())
	assert.Equal(t, 1, spec.Controls)
	assert.InDelta(t, math.Pi/2, spec.Params[0], 1e-12)
}

func TestClassifyFractionalUnsupported(t *testing.T) {
	tests := []struct {
		name string
		g    pow.Gate
	}{
		{"fractional hpow", pow.HPow{Exponent: 0.5}},
		{"fractional cxpow", pow.CXPow{Exponent: 0.5}},
		{"fractional swappow", pow.SwapPow{Exponent: 0.5}},
		{"fractional iswappow", pow.ISwapPow{Exponent: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wires := make([]int, tt.g.Span())
			for i := range wires {
				wires[i] = i
			}
			_, _, _, err := classifyPow(pow.Op{Gate: tt.g, Wires: wires})
			var unsupported *UnsupportedGateError
			require.ErrorAs(t, err, &unsupported)
		})
	}
}
