package convert

import (
	"fmt"

	"github.com/qinterop/qinterop/deck"
	"github.com/qinterop/qinterop/gate"
)

type deckCall struct {
	typ    string
	params []float64
	wires  int
}

func (g deckCall) Apply(target any, qubits, clbits []int) error {
	c, ok := target.(*deck.Circuit)
	if !ok {
		return fmt.Errorf("deck gate applied to %T", target)
	}
	switch {
	case g.typ == "MEASURE":
		if len(qubits) != 1 || len(clbits) != 1 {
			return fmt.Errorf("measure needs one qubit and one clbit, got %d/%d", len(qubits), len(clbits))
		}
		return c.AddGate(deck.Gate{Type: "MEASURE", Target: qubits[0], Control: -1, Clbit: clbits[0]})
	case g.wires == 2:
		if len(qubits) != 2 {
			return fmt.Errorf("%s needs two wires, got %d", g.typ, len(qubits))
		}
		return c.AddGate(deck.Gate{Type: g.typ, Control: qubits[0], Target: qubits[1], Params: g.params, Clbit: -1})
	default:
		if len(qubits) != 1 {
			return fmt.Errorf("%s needs one wire, got %d", g.typ, len(qubits))
		}
		return c.AddGate(deck.Gate{Type: g.typ, Target: qubits[0], Control: -1, Params: g.params, Clbit: -1})
	}
}

func fixedDeck(typ string, wires int) emitter {
	return func(*gate.Spec) (NativeGate, error) {
		return deckCall{typ: typ, wires: wires}, nil
	}
}

func paramDeck(typ string) emitter {
	return func(s *gate.Spec) (NativeGate, error) {
		return deckCall{typ: typ, params: s.Params, wires: 1}, nil
	}
}

func deckEmitters() map[tableKey]emitter {
	return map[tableKey]emitter{
		{gate.I, 0}:       fixedDeck("I", 1),
		{gate.H, 0}:       fixedDeck("H", 1),
		{gate.X, 0}:       fixedDeck("X", 1),
		{gate.Y, 0}:       fixedDeck("Y", 1),
		{gate.Z, 0}:       fixedDeck("Z", 1),
		{gate.S, 0}:       fixedDeck("S", 1),
		{gate.Sdg, 0}:     fixedDeck("SDG", 1),
		{gate.T, 0}:       fixedDeck("T", 1),
		{gate.Tdg, 0}:     fixedDeck("TDG", 1),
		{gate.RX, 0}:      paramDeck("RX"),
		{gate.RY, 0}:      paramDeck("RY"),
		{gate.RZ, 0}:      paramDeck("RZ"),
		{gate.P, 0}:       paramDeck("P"),
		{gate.Swap, 0}:    fixedDeck("SWAP", 2),
		{gate.X, 1}:       fixedDeck("CX", 2),
		{gate.Z, 1}:       fixedDeck("CZ", 2),
		{gate.Measure, 0}: fixedDeck("MEASURE", 1),
	}
}

var deckKinds = map[string]struct {
	kind     gate.Kind
	controls int
}{
	"I":       {gate.I, 0},
	"H":       {gate.H, 0},
	"X":       {gate.X, 0},
	"Y":       {gate.Y, 0},
	"Z":       {gate.Z, 0},
	"S":       {gate.S, 0},
	"SDG":     {gate.Sdg, 0},
	"T":       {gate.T, 0},
	"TDG":     {gate.Tdg, 0},
	"RX":      {gate.RX, 0},
	"RY":      {gate.RY, 0},
	"RZ":      {gate.RZ, 0},
	"P":       {gate.P, 0},
	"SWAP":    {gate.Swap, 0},
	"CX":      {gate.X, 1},
	"CZ":      {gate.Z, 1},
	"MEASURE": {gate.Measure, 0},
}

func classifyDeck(g deck.Gate) (*gate.Spec, []int, []int, error) {
	k, ok := deckKinds[g.Type]
	if !ok {
		return nil, nil, nil, &gate.UnknownKindError{Token: g.Type}
	}
	spec, err := gate.New(k.kind, g.Params...)
	if err != nil {
		return nil, nil, nil, err
	}
	if k.controls > 0 {
		spec = spec.Control(k.controls)
	}
	switch {
	case g.Type == "MEASURE":
		return spec, []int{g.Target}, []int{g.Clbit}, nil
	case k.controls > 0 || k.kind == gate.Swap:
		return spec, []int{g.Control, g.Target}, nil, nil
	default:
		return spec, []int{g.Target}, nil, nil
	}
}
