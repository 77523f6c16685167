package deck

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML fills the -1 sentinels for absent control/clbit fields before
// decoding; a YAML zero would otherwise read as wire 0.
func (g *Gate) UnmarshalYAML(value *yaml.Node) error {
	type plain Gate
	p := plain{Control: -1, Clbit: -1}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*g = Gate(p)
	return nil
}

// Marshal renders the circuit as a YAML document.
func (c *Circuit) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Unmarshal reads a YAML circuit description and validates every gate.
func Unmarshal(data []byte) (*Circuit, error) {
	var c Circuit
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("deck: %w", err)
	}
	for i, g := range c.Gates {
		if err := c.check(g); err != nil {
			return nil, fmt.Errorf("deck: gate %d: %w", i, err)
		}
	}
	return &c, nil
}
