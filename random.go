package qinterop

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/qinterop/qinterop/convert"
	"github.com/qinterop/qinterop/gate"
)

// The pool draws only from kinds every mapping table can emit, so a random
// circuit is expressible in whichever library was requested.
var (
	randomFixed     = []gate.Kind{gate.H, gate.X, gate.Y, gate.Z, gate.S, gate.Sdg, gate.T, gate.Tdg}
	randomRotations = []gate.Kind{gate.RX, gate.RY, gate.RZ, gate.P}
)

// RandomCircuit builds a random native circuit for the given library: depth
// layers, every wire touched once per layer, two-qubit gates interleaved on
// randomly paired wires. A nil rng seeds from the clock; pass a seeded one
// for reproducibility.
func RandomCircuit(lib convert.Library, numQubits, depth int, rng *rand.Rand) (any, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("random circuit needs at least one qubit, got %d", numQubits)
	}
	if depth < 1 {
		return nil, fmt.Errorf("random circuit needs positive depth, got %d", depth)
	}
	table, err := convert.NewTable(lib)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	native := table.NewNative(numQubits, 0)
	wires := make([]int, numQubits)
	for i := range wires {
		wires[i] = i
	}
	for d := 0; d < depth; d++ {
		rng.Shuffle(len(wires), func(i, j int) { wires[i], wires[j] = wires[j], wires[i] })
		for i := 0; i < len(wires); {
			spec, width := randomGate(rng, len(wires)-i)
			h, err := table.ToNative(spec)
			if err != nil {
				return nil, err
			}
			qs := make([]int, width)
			copy(qs, wires[i:i+width])
			if err := h.Apply(native, qs, nil); err != nil {
				return nil, err
			}
			i += width
		}
	}
	return native, nil
}

func randomGate(rng *rand.Rand, free int) (*gate.Spec, int) {
	if free >= 2 && rng.Float64() < 0.4 {
		switch rng.Intn(3) {
		case 0:
			return gate.MustNew(gate.X).Control(1), 2
		case 1:
			return gate.MustNew(gate.Z).Control(1), 2
		default:
			return gate.MustNew(gate.Swap), 2
		}
	}
	if rng.Float64() < 0.5 {
		k := randomRotations[rng.Intn(len(randomRotations))]
		return gate.MustNew(k, 2*math.Pi*rng.Float64()), 1
	}
	return gate.MustNew(randomFixed[rng.Intn(len(randomFixed))]), 1
}
