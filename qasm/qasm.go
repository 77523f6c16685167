// Package qasm implements OpenQASM 2.0 text circuits over the qelib1 gate
// subset. Wire convention is little-endian: q[0] is the least significant
// basis bit.
package qasm

import (
	"fmt"
	"strconv"
	"strings"
)

// Statement is one parsed circuit operation. Name is the lowercase qelib
// token; measurements use the name "measure" with one qubit and one clbit.
type Statement struct {
	Name   string
	Params []float64
	Qubits []int
	Clbits []int
}

// Circuit is a parsed or under-construction OpenQASM 2.0 program with a
// single quantum and a single classical register.
type Circuit struct {
	NumQubits  int
	NumClbits  int
	Statements []Statement
}

type gateArity struct {
	qubits int
	params int
}

var gates = map[string]gateArity{
	"id":    {1, 0},
	"h":     {1, 0},
	"x":     {1, 0},
	"y":     {1, 0},
	"z":     {1, 0},
	"s":     {1, 0},
	"sdg":   {1, 0},
	"t":     {1, 0},
	"tdg":   {1, 0},
	"sx":    {1, 0},
	"rx":    {1, 1},
	"ry":    {1, 1},
	"rz":    {1, 1},
	"p":     {1, 1},
	"u1":    {1, 1},
	"u2":    {1, 2},
	"u3":    {1, 3},
	"swap":  {2, 0},
	"cx":    {2, 0},
	"cy":    {2, 0},
	"cz":    {2, 0},
	"ch":    {2, 0},
	"crx":   {2, 1},
	"cry":   {2, 1},
	"crz":   {2, 1},
	"cp":    {2, 1},
	"cu1":   {2, 1},
	"rzz":   {2, 1},
	"ccx":   {3, 0},
	"cswap": {3, 0},
}

// Supports reports whether name is a known qelib gate token.
func Supports(name string) bool {
	_, ok := gates[strings.ToLower(name)]
	return ok
}

// New returns an empty circuit over q[numQubits] and c[numClbits].
func New(numQubits, numClbits int) *Circuit {
	return &Circuit{NumQubits: numQubits, NumClbits: numClbits}
}

// AddGate appends a gate statement, checking the token and arities.
func (c *Circuit) AddGate(name string, params []float64, qubits ...int) error {
	name = strings.ToLower(name)
	a, ok := gates[name]
	if !ok {
		return fmt.Errorf("qasm: unknown gate %q", name)
	}
	if len(qubits) != a.qubits {
		return fmt.Errorf("qasm: gate %s takes %d qubits, got %d", name, a.qubits, len(qubits))
	}
	if len(params) != a.params {
		return fmt.Errorf("qasm: gate %s takes %d parameters, got %d", name, a.params, len(params))
	}
	for _, q := range qubits {
		if q < 0 || q >= c.NumQubits {
			return fmt.Errorf("qasm: qubit %d out of range [0,%d)", q, c.NumQubits)
		}
	}
	c.Statements = append(c.Statements, Statement{Name: name, Params: params, Qubits: qubits})
	return nil
}

// AddMeasure appends "measure q[qubit] -> c[clbit];".
func (c *Circuit) AddMeasure(qubit, clbit int) error {
	if qubit < 0 || qubit >= c.NumQubits {
		return fmt.Errorf("qasm: qubit %d out of range [0,%d)", qubit, c.NumQubits)
	}
	if clbit < 0 || clbit >= c.NumClbits {
		return fmt.Errorf("qasm: clbit %d out of range [0,%d)", clbit, c.NumClbits)
	}
	c.Statements = append(c.Statements, Statement{
		Name:   "measure",
		Qubits: []int{qubit},
		Clbits: []int{clbit},
	})
	return nil
}

// Text renders the program deterministically.
func (c *Circuit) Text() string {
	var b strings.Builder
	b.WriteString("OPENQASM 2.0;\n")
	b.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&b, "qreg q[%d];\n", c.NumQubits)
	if c.NumClbits > 0 {
		fmt.Fprintf(&b, "creg c[%d];\n", c.NumClbits)
	}
	for _, st := range c.Statements {
		if st.Name == "measure" {
			fmt.Fprintf(&b, "measure q[%d] -> c[%d];\n", st.Qubits[0], st.Clbits[0])
			continue
		}
		b.WriteString(st.Name)
		if len(st.Params) > 0 {
			parts := make([]string, len(st.Params))
			for i, p := range st.Params {
				parts[i] = strconv.FormatFloat(p, 'g', -1, 64)
			}
			b.WriteString("(" + strings.Join(parts, ",") + ")")
		}
		refs := make([]string, len(st.Qubits))
		for i, q := range st.Qubits {
			refs[i] = fmt.Sprintf("q[%d]", q)
		}
		b.WriteString(" " + strings.Join(refs, ",") + ";\n")
	}
	return b.String()
}
