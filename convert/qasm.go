package convert

import (
	"fmt"

	"github.com/qinterop/qinterop/gate"
	"github.com/qinterop/qinterop/qasm"
)

type qasmCall struct {
	name   string
	params []float64
}

func (g qasmCall) Apply(target any, qubits, clbits []int) error {
	c, ok := target.(*qasm.Circuit)
	if !ok {
		return fmt.Errorf("qasm gate applied to %T", target)
	}
	return c.AddGate(g.name, g.params, qubits...)
}

// fixedQASM emits a parameterless statement.
func fixedQASM(name string) emitter {
	return func(*gate.Spec) (NativeGate, error) {
		return qasmCall{name: name}, nil
	}
}

// paramQASM passes the spec's parameters through to the statement.
func paramQASM(name string) emitter {
	return func(s *gate.Spec) (NativeGate, error) {
		return qasmCall{name: name, params: s.Params}, nil
	}
}

func qasmEmitters() map[tableKey]emitter {
	m := map[tableKey]emitter{
		{gate.I, 0}:       fixedQASM("id"),
		{gate.H, 0}:       fixedQASM("h"),
		{gate.X, 0}:       fixedQASM("x"),
		{gate.Y, 0}:       fixedQASM("y"),
		{gate.Z, 0}:       fixedQASM("z"),
		{gate.S, 0}:       fixedQASM("s"),
		{gate.Sdg, 0}:     fixedQASM("sdg"),
		{gate.T, 0}:       fixedQASM("t"),
		{gate.Tdg, 0}:     fixedQASM("tdg"),
		{gate.SX, 0}:      fixedQASM("sx"),
		{gate.RX, 0}:      paramQASM("rx"),
		{gate.RY, 0}:      paramQASM("ry"),
		{gate.RZ, 0}:      paramQASM("rz"),
		{gate.P, 0}:       paramQASM("p"),
		{gate.U2, 0}:      paramQASM("u2"),
		{gate.U3, 0}:      paramQASM("u3"),
		{gate.Swap, 0}:    fixedQASM("swap"),
		{gate.RZZ, 0}:     paramQASM("rzz"),
		{gate.H, 1}:       fixedQASM("ch"),
		{gate.X, 1}:       fixedQASM("cx"),
		{gate.X, 2}:       fixedQASM("ccx"),
		{gate.Y, 1}:       fixedQASM("cy"),
		{gate.Z, 1}:       fixedQASM("cz"),
		{gate.RX, 1}:      paramQASM("crx"),
		{gate.RY, 1}:      paramQASM("cry"),
		{gate.RZ, 1}:      paramQASM("crz"),
		{gate.P, 1}:       paramQASM("cp"),
		{gate.Swap, 1}:    fixedQASM("cswap"),
		{gate.Measure, 0}: func(*gate.Spec) (NativeGate, error) { return MeasureSentinel, nil },
	}
	return m
}

// classifiers from qelib tokens; token -> canonical spec builder.
var qasmKinds = map[string]struct {
	kind     gate.Kind
	controls int
}{
	"id":      {gate.I, 0},
	"h":       {gate.H, 0},
	"x":       {gate.X, 0},
	"y":       {gate.Y, 0},
	"z":       {gate.Z, 0},
	"s":       {gate.S, 0},
	"sdg":     {gate.Sdg, 0},
	"t":       {gate.T, 0},
	"tdg":     {gate.Tdg, 0},
	"sx":      {gate.SX, 0},
	"rx":      {gate.RX, 0},
	"ry":      {gate.RY, 0},
	"rz":      {gate.RZ, 0},
	"p":       {gate.P, 0},
	"u1":      {gate.P, 0},
	"u2":      {gate.U2, 0},
	"u3":      {gate.U3, 0},
	"swap":    {gate.Swap, 0},
	"rzz":     {gate.RZZ, 0},
	"ch":      {gate.H, 1},
	"cx":      {gate.X, 1},
	"ccx":     {gate.X, 2},
	"cy":      {gate.Y, 1},
	"cz":      {gate.Z, 1},
	"crx":     {gate.RX, 1},
	"cry":     {gate.RY, 1},
	"crz":     {gate.RZ, 1},
	"cp":      {gate.P, 1},
	"cu1":     {gate.P, 1},
	"cswap":   {gate.Swap, 1},
	"measure": {gate.Measure, 0},
}

func classifyQASM(st qasm.Statement) (*gate.Spec, []int, []int, error) {
	k, ok := qasmKinds[st.Name]
	if !ok {
		return nil, nil, nil, &gate.UnknownKindError{Token: st.Name}
	}
	spec, err := gate.New(k.kind, st.Params...)
	if err != nil {
		return nil, nil, nil, err
	}
	if k.controls > 0 {
		spec = spec.Control(k.controls)
	}
	return spec, st.Qubits, st.Clbits, nil
}
