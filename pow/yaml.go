package pow

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type opYAML struct {
	Gate     string   `yaml:"gate"`
	Exponent *float64 `yaml:"exponent,omitempty"`
	Shift    float64  `yaml:"shift,omitempty"`
	Bit      int      `yaml:"bit,omitempty"`
	Wires    []int    `yaml:"wires"`
}

type circuitYAML struct {
	Phase float64  `yaml:"phase,omitempty"`
	Ops   []opYAML `yaml:"ops"`
}

// Marshal renders the circuit as a YAML document.
func (c *Circuit) Marshal() ([]byte, error) {
	doc := circuitYAML{Phase: c.GlobalPhase, Ops: make([]opYAML, len(c.Ops))}
	for i, op := range c.Ops {
		o := opYAML{Gate: op.Gate.Token(), Wires: op.Wires}
		switch g := op.Gate.(type) {
		case XPow:
			o.Exponent, o.Shift = &g.Exponent, g.GlobalShift
		case YPow:
			o.Exponent, o.Shift = &g.Exponent, g.GlobalShift
		case ZPow:
			o.Exponent, o.Shift = &g.Exponent, g.GlobalShift
		case HPow:
			o.Exponent, o.Shift = &g.Exponent, g.GlobalShift
		case CXPow:
			o.Exponent = &g.Exponent
		case CZPow:
			o.Exponent = &g.Exponent
		case SwapPow:
			o.Exponent = &g.Exponent
		case ISwapPow:
			o.Exponent = &g.Exponent
		case Measure:
			o.Bit = g.Bit
		}
		doc.Ops[i] = o
	}
	return yaml.Marshal(doc)
}

// Unmarshal reads a YAML circuit description. An absent exponent defaults
// to 1, the plain (unpowered) member of each family.
func Unmarshal(data []byte) (*Circuit, error) {
	var doc circuitYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("pow: %w", err)
	}
	c := &Circuit{GlobalPhase: doc.Phase}
	for i, o := range doc.Ops {
		e := 1.0
		if o.Exponent != nil {
			e = *o.Exponent
		}
		var g Gate
		switch o.Gate {
		case "xpow":
			g = XPow{Exponent: e, GlobalShift: o.Shift}
		case "ypow":
			g = YPow{Exponent: e, GlobalShift: o.Shift}
		case "zpow":
			g = ZPow{Exponent: e, GlobalShift: o.Shift}
		case "hpow":
			g = HPow{Exponent: e, GlobalShift: o.Shift}
		case "cxpow":
			g = CXPow{Exponent: e}
		case "czpow":
			g = CZPow{Exponent: e}
		case "swappow":
			g = SwapPow{Exponent: e}
		case "iswappow":
			g = ISwapPow{Exponent: e}
		case "measure":
			g = Measure{Bit: o.Bit}
		default:
			return nil, fmt.Errorf("pow: op %d: unknown gate %q", i, o.Gate)
		}
		if err := c.Append(g, o.Wires...); err != nil {
			return nil, fmt.Errorf("pow: op %d: %w", i, err)
		}
	}
	return c, nil
}
