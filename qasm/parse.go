package qasm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse reads an OpenQASM 2.0 program restricted to a single qreg/creg pair
// and the qelib1 gate subset. Statement-per-line, as the emitters in this
// module and the builders in common toolchains produce.
func Parse(text string) (*Circuit, error) {
	c := &Circuit{}
	sawVersion := false
	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if i := strings.Index(line, "//"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}
		line = strings.TrimSuffix(line, ";")
		switch {
		case strings.HasPrefix(line, "OPENQASM"):
			if !strings.HasSuffix(strings.TrimSpace(line), "2.0") {
				return nil, fmt.Errorf("qasm: line %d: unsupported version %q", lineNo+1, line)
			}
			sawVersion = true
		case strings.HasPrefix(line, "include"):
			// qelib1.inc assumed
		case strings.HasPrefix(line, "qreg"):
			n, err := parseRegDecl(line, "qreg")
			if err != nil {
				return nil, fmt.Errorf("qasm: line %d: %w", lineNo+1, err)
			}
			c.NumQubits = n
		case strings.HasPrefix(line, "creg"):
			n, err := parseRegDecl(line, "creg")
			if err != nil {
				return nil, fmt.Errorf("qasm: line %d: %w", lineNo+1, err)
			}
			c.NumClbits = n
		case strings.HasPrefix(line, "measure"):
			st, err := parseMeasure(line)
			if err != nil {
				return nil, fmt.Errorf("qasm: line %d: %w", lineNo+1, err)
			}
			c.Statements = append(c.Statements, st)
		case strings.HasPrefix(line, "barrier"):
			// no semantic content for conversion
		default:
			st, err := parseGateCall(line)
			if err != nil {
				return nil, fmt.Errorf("qasm: line %d: %w", lineNo+1, err)
			}
			c.Statements = append(c.Statements, st)
		}
	}
	if !sawVersion {
		return nil, fmt.Errorf("qasm: missing OPENQASM 2.0 header")
	}
	for i, st := range c.Statements {
		for _, q := range st.Qubits {
			if q >= c.NumQubits {
				return nil, fmt.Errorf("qasm: statement %d references q[%d], register has %d", i, q, c.NumQubits)
			}
		}
		for _, b := range st.Clbits {
			if b >= c.NumClbits {
				return nil, fmt.Errorf("qasm: statement %d references c[%d], register has %d", i, b, c.NumClbits)
			}
		}
	}
	return c, nil
}

func parseRegDecl(line, kw string) (int, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, kw))
	open := strings.Index(rest, "[")
	close := strings.Index(rest, "]")
	if open < 0 || close < open {
		return 0, fmt.Errorf("malformed %s declaration %q", kw, line)
	}
	n, err := strconv.Atoi(rest[open+1 : close])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("malformed %s size in %q", kw, line)
	}
	return n, nil
}

func parseMeasure(line string) (Statement, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "measure"))
	parts := strings.Split(rest, "->")
	if len(parts) != 2 {
		return Statement{}, fmt.Errorf("malformed measure %q", line)
	}
	q, err := parseWireRef(strings.TrimSpace(parts[0]))
	if err != nil {
		return Statement{}, err
	}
	b, err := parseWireRef(strings.TrimSpace(parts[1]))
	if err != nil {
		return Statement{}, err
	}
	return Statement{Name: "measure", Qubits: []int{q}, Clbits: []int{b}}, nil
}

func parseGateCall(line string) (Statement, error) {
	name := line
	var params []float64
	if open := strings.Index(line, "("); open >= 0 {
		close := strings.Index(line, ")")
		if close < open {
			return Statement{}, fmt.Errorf("malformed parameter list in %q", line)
		}
		name = line[:open]
		for _, expr := range strings.Split(line[open+1:close], ",") {
			v, err := parseParam(strings.TrimSpace(expr))
			if err != nil {
				return Statement{}, err
			}
			params = append(params, v)
		}
		line = name + line[close+1:]
	}
	fields := strings.SplitN(line, " ", 2)
	if len(fields) != 2 {
		return Statement{}, fmt.Errorf("malformed gate call %q", line)
	}
	name = strings.ToLower(strings.TrimSpace(fields[0]))
	a, ok := gates[name]
	if !ok {
		return Statement{}, fmt.Errorf("unknown gate %q", name)
	}
	var qubits []int
	for _, ref := range strings.Split(fields[1], ",") {
		q, err := parseWireRef(strings.TrimSpace(ref))
		if err != nil {
			return Statement{}, err
		}
		qubits = append(qubits, q)
	}
	if len(qubits) != a.qubits {
		return Statement{}, fmt.Errorf("gate %s takes %d qubits, got %d", name, a.qubits, len(qubits))
	}
	if len(params) != a.params {
		return Statement{}, fmt.Errorf("gate %s takes %d parameters, got %d", name, a.params, len(params))
	}
	return Statement{Name: name, Params: params, Qubits: qubits}, nil
}

func parseWireRef(ref string) (int, error) {
	open := strings.Index(ref, "[")
	close := strings.Index(ref, "]")
	if open < 0 || close < open {
		return 0, fmt.Errorf("malformed wire reference %q", ref)
	}
	idx, err := strconv.Atoi(ref[open+1 : close])
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("malformed wire index in %q", ref)
	}
	return idx, nil
}

// parseParam evaluates a parameter expression: a float literal or the common
// pi forms (pi, -pi, pi/2, 3*pi/4, 2*pi).
func parseParam(expr string) (float64, error) {
	if v, err := strconv.ParseFloat(expr, 64); err == nil {
		return v, nil
	}
	s := strings.ReplaceAll(expr, " ", "")
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	num, den := 1.0, 1.0
	if i := strings.Index(s, "/"); i >= 0 {
		d, err := strconv.ParseFloat(s[i+1:], 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("malformed parameter %q", expr)
		}
		den = d
		s = s[:i]
	}
	if i := strings.Index(s, "*"); i >= 0 {
		n, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			return 0, fmt.Errorf("malformed parameter %q", expr)
		}
		num = n
		s = s[i+1:]
	}
	if s != "pi" {
		return 0, fmt.Errorf("malformed parameter %q", expr)
	}
	v := num * math.Pi / den
	if neg {
		v = -v
	}
	return v, nil
}
