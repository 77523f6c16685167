// Package deck implements struct-gate circuits in the style of terminal
// circuit builders: a flat gate list with string-typed gates and explicit
// control/target wires. Wire convention is most-significant-first: wire 0 is
// the highest basis bit.
package deck

import "fmt"

// Gate is one circuit operation. Control is -1 for uncontrolled gates;
// Clbit is -1 except for MEASURE. For SWAP, Control holds the first of the
// two exchanged wires.
type Gate struct {
	Type    string    `yaml:"type"`
	Target  int       `yaml:"target"`
	Control int       `yaml:"control"`
	Params  []float64 `yaml:"params,omitempty"`
	Clbit   int       `yaml:"clbit"`
}

// Circuit is an ordered gate list over fixed wire counts.
type Circuit struct {
	NumQubits int    `yaml:"qubits"`
	NumClbits int    `yaml:"clbits"`
	Gates     []Gate `yaml:"gates"`
}

var oneQubit = map[string]int{
	"I": 0, "H": 0, "X": 0, "Y": 0, "Z": 0,
	"S": 0, "SDG": 0, "T": 0, "TDG": 0,
	"RX": 1, "RY": 1, "RZ": 1, "P": 1,
}

var twoQubit = map[string]bool{
	"CX": true, "CZ": true, "SWAP": true,
}

// Supports reports whether typ is a gate this library can hold.
func Supports(typ string) bool {
	if _, ok := oneQubit[typ]; ok {
		return true
	}
	return twoQubit[typ] || typ == "MEASURE"
}

// New returns an empty circuit.
func New(numQubits, numClbits int) *Circuit {
	return &Circuit{NumQubits: numQubits, NumClbits: numClbits}
}

// AddGate appends a validated gate.
func (c *Circuit) AddGate(g Gate) error {
	if err := c.check(g); err != nil {
		return err
	}
	c.Gates = append(c.Gates, g)
	return nil
}

func (c *Circuit) check(g Gate) error {
	inRange := func(q int) bool { return q >= 0 && q < c.NumQubits }
	switch {
	case g.Type == "MEASURE":
		if !inRange(g.Target) {
			return fmt.Errorf("deck: measure target %d out of range [0,%d)", g.Target, c.NumQubits)
		}
		if g.Clbit < 0 || g.Clbit >= c.NumClbits {
			return fmt.Errorf("deck: measure clbit %d out of range [0,%d)", g.Clbit, c.NumClbits)
		}
		return nil
	case twoQubit[g.Type]:
		if !inRange(g.Target) || !inRange(g.Control) {
			return fmt.Errorf("deck: %s wires (%d,%d) out of range [0,%d)", g.Type, g.Control, g.Target, c.NumQubits)
		}
		if g.Control == g.Target {
			return fmt.Errorf("deck: %s control and target are both wire %d", g.Type, g.Target)
		}
		return nil
	default:
		np, ok := oneQubit[g.Type]
		if !ok {
			return fmt.Errorf("deck: unknown gate type %q", g.Type)
		}
		if !inRange(g.Target) {
			return fmt.Errorf("deck: %s target %d out of range [0,%d)", g.Type, g.Target, c.NumQubits)
		}
		if len(g.Params) != np {
			return fmt.Errorf("deck: %s takes %d parameters, got %d", g.Type, np, len(g.Params))
		}
		if g.Control >= 0 {
			return fmt.Errorf("deck: %s does not take a control", g.Type)
		}
		return nil
	}
}
