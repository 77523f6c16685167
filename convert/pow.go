package convert

import (
	"fmt"
	"math"

	"github.com/qinterop/qinterop/gate"
	"github.com/qinterop/qinterop/pow"
)

type powCall struct {
	gate pow.Gate
}

func (g powCall) Apply(target any, qubits, clbits []int) error {
	c, ok := target.(*pow.Circuit)
	if !ok {
		return fmt.Errorf("pow gate applied to %T", target)
	}
	return c.Append(g.gate, qubits...)
}

type powMeasure struct{}

func (powMeasure) Apply(target any, qubits, clbits []int) error {
	c, ok := target.(*pow.Circuit)
	if !ok {
		return fmt.Errorf("pow measure applied to %T", target)
	}
	if len(qubits) != 1 || len(clbits) != 1 {
		return fmt.Errorf("measure needs one qubit and one clbit, got %d/%d", len(qubits), len(clbits))
	}
	return c.Append(pow.Measure{Bit: clbits[0]}, qubits...)
}

func fixedPow(g pow.Gate) emitter {
	return func(*gate.Spec) (NativeGate, error) {
		return powCall{gate: g}, nil
	}
}

func powEmitters() map[tableKey]emitter {
	return map[tableKey]emitter{
		{gate.I, 0}:    fixedPow(pow.XPow{Exponent: 0}),
		{gate.H, 0}:    fixedPow(pow.HPow{Exponent: 1}),
		{gate.X, 0}:    fixedPow(pow.XPow{Exponent: 1}),
		{gate.Y, 0}:    fixedPow(pow.YPow{Exponent: 1}),
		{gate.Z, 0}:    fixedPow(pow.ZPow{Exponent: 1}),
		{gate.S, 0}:    fixedPow(pow.ZPow{Exponent: 0.5}),
		{gate.Sdg, 0}:  fixedPow(pow.ZPow{Exponent: -0.5}),
		{gate.T, 0}:    fixedPow(pow.ZPow{Exponent: 0.25}),
		{gate.Tdg, 0}:  fixedPow(pow.ZPow{Exponent: -0.25}),
		{gate.SX, 0}:   fixedPow(pow.XPow{Exponent: 0.5}),
		{gate.SXdg, 0}: fixedPow(pow.XPow{Exponent: -0.5}),
		{gate.RX, 0}: func(s *gate.Spec) (NativeGate, error) {
			return powCall{gate: pow.XPow{Exponent: s.Params[0] / math.Pi, GlobalShift: -0.5}}, nil
		},
		{gate.RY, 0}: func(s *gate.Spec) (NativeGate, error) {
			return powCall{gate: pow.YPow{Exponent: s.Params[0] / math.Pi, GlobalShift: -0.5}}, nil
		},
		{gate.RZ, 0}: func(s *gate.Spec) (NativeGate, error) {
			return powCall{gate: pow.ZPow{Exponent: s.Params[0] / math.Pi, GlobalShift: -0.5}}, nil
		},
		{gate.P, 0}: func(s *gate.Spec) (NativeGate, error) {
			return powCall{gate: pow.ZPow{Exponent: s.Params[0] / math.Pi}}, nil
		},
		{gate.Swap, 0}:  fixedPow(pow.SwapPow{Exponent: 1}),
		{gate.ISwap, 0}: fixedPow(pow.ISwapPow{Exponent: 1}),
		{gate.X, 1}:     fixedPow(pow.CXPow{Exponent: 1}),
		{gate.Z, 1}:     fixedPow(pow.CZPow{Exponent: 1}),
		{gate.P, 1}: func(s *gate.Spec) (NativeGate, error) {
			return powCall{gate: pow.CZPow{Exponent: s.Params[0] / math.Pi}}, nil
		},
		{gate.Measure, 0}: func(*gate.Spec) (NativeGate, error) { return powMeasure{}, nil },
	}
}

// classifyPow disambiguates the overloaded exponent families. Named fixed
// gates require exact parameter values (exponent equal to exactly 1, 0.5,
// 0.25); close-but-not-equal values classify as the rotation or phase
// family, which is algebraically exact, never a rounding.
func classifyPow(op pow.Op) (*gate.Spec, []int, []int, error) {
	var spec *gate.Spec
	var err error
	switch g := op.Gate.(type) {
	case pow.Measure:
		spec, err = gate.New(gate.Measure)
		if err != nil {
			return nil, nil, nil, err
		}
		return spec, op.Wires, []int{g.Bit}, nil
	case pow.XPow:
		spec, err = classifyXPow(g)
	case pow.YPow:
		spec, err = classifyYPow(g)
	case pow.ZPow:
		spec, err = classifyZPow(g)
	case pow.HPow:
		switch {
		case g.Exponent == 0:
			spec, err = gate.New(gate.I)
		case g.Exponent == 1 && g.GlobalShift == 0:
			spec, err = gate.New(gate.H)
		default:
			return nil, nil, nil, &UnsupportedGateError{Kind: gate.Kind("HPow"), Library: Pow}
		}
	case pow.CXPow:
		if g.Exponent != 1 {
			return nil, nil, nil, &UnsupportedGateError{Kind: gate.Kind("CXPow"), Library: Pow}
		}
		spec, err = gate.New(gate.X)
		if err == nil {
			spec = spec.Control(1)
		}
	case pow.CZPow:
		if g.Exponent == 1 {
			spec, err = gate.New(gate.Z)
		} else {
			// diag(1,1,1,e^{iπt}) is exactly a controlled phase
			spec, err = gate.New(gate.P, math.Pi*g.Exponent)
		}
		if err == nil {
			spec = spec.Control(1)
		}
	case pow.SwapPow:
		if g.Exponent != 1 {
			return nil, nil, nil, &UnsupportedGateError{Kind: gate.Kind("SwapPow"), Library: Pow}
		}
		spec, err = gate.New(gate.Swap)
	case pow.ISwapPow:
		if g.Exponent != 1 {
			return nil, nil, nil, &UnsupportedGateError{Kind: gate.Kind("ISwapPow"), Library: Pow}
		}
		spec, err = gate.New(gate.ISwap)
	default:
		return nil, nil, nil, &gate.UnknownKindError{Token: op.Gate.Token()}
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return spec, op.Wires, nil, nil
}

func classifyXPow(g pow.XPow) (*gate.Spec, error) {
	switch {
	case g.Exponent == 0:
		return gate.New(gate.I)
	case g.GlobalShift == 0 && g.Exponent == 1:
		return gate.New(gate.X)
	case g.GlobalShift == 0 && g.Exponent == 0.5:
		return gate.New(gate.SX)
	case g.GlobalShift == 0 && g.Exponent == -0.5:
		return gate.New(gate.SXdg)
	}
	// X^t·e^{iπts} = RX(πt)·e^{iπt(s+1/2)}
	spec, err := gate.New(gate.RX, math.Pi*g.Exponent)
	if err != nil {
		return nil, err
	}
	spec.GlobalPhase = math.Pi * g.Exponent * (g.GlobalShift + 0.5)
	return spec, nil
}

func classifyYPow(g pow.YPow) (*gate.Spec, error) {
	switch {
	case g.Exponent == 0:
		return gate.New(gate.I)
	case g.GlobalShift == 0 && g.Exponent == 1:
		return gate.New(gate.Y)
	}
	spec, err := gate.New(gate.RY, math.Pi*g.Exponent)
	if err != nil {
		return nil, err
	}
	spec.GlobalPhase = math.Pi * g.Exponent * (g.GlobalShift + 0.5)
	return spec, nil
}

func classifyZPow(g pow.ZPow) (*gate.Spec, error) {
	if g.GlobalShift == 0 {
		switch g.Exponent {
		case 0:
			return gate.New(gate.I)
		case 1:
			return gate.New(gate.Z)
		case 0.5:
			return gate.New(gate.S)
		case -0.5:
			return gate.New(gate.Sdg)
		case 0.25:
			return gate.New(gate.T)
		case -0.25:
			return gate.New(gate.Tdg)
		}
	}
	if g.GlobalShift == -0.5 {
		// the shifted family is exactly the RZ rotations
		return gate.New(gate.RZ, math.Pi*g.Exponent)
	}
	// Z^t·e^{iπts} = P(πt)·e^{iπts}
	spec, err := gate.New(gate.P, math.Pi*g.Exponent)
	if err != nil {
		return nil, err
	}
	spec.GlobalPhase = math.Pi * g.Exponent * g.GlobalShift
	return spec, nil
}
