// Package draw renders a circuit as a wire diagram for terminal display.
package draw

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qinterop/qinterop/gate"
	"github.com/qinterop/qinterop/ir"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	cbitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))
)

// Circuit renders c column-per-instruction, one wire row per qubit with
// connector rows interleaved, and a single classical wire at the bottom when
// the circuit measures. The circuit should already be contiguously numbered;
// wires are drawn for indices 0..NumQubits-1.
func Circuit(c *ir.Circuit) string {
	nq := c.NumQubits
	if nq == 0 {
		return ""
	}
	// rows 0,2,4,... are qubit wires, odd rows carry vertical connectors
	nrows := 2*nq - 1
	hasC := c.NumClbits > 0
	rows := make([]string, nrows)
	crow := ""

	labelW := len(fmt.Sprintf("q[%d]", nq-1)) + 1
	for q := 0; q < nq; q++ {
		rows[2*q] = labelStyle.Render(fmt.Sprintf("%-*s", labelW, fmt.Sprintf("q[%d]", q)))
	}
	for r := 1; r < nrows; r += 2 {
		rows[r] = strings.Repeat(" ", labelW)
	}
	if hasC {
		crow = cbitStyle.Render(fmt.Sprintf("%-*s", labelW, fmt.Sprintf("c%d", c.NumClbits)))
	}

	for _, insn := range c.Instructions {
		w := columnWidth(insn)
		lo, hi := span(insn.Qubits)
		measured := insn.Gate.BaseKind() == gate.Measure

		for q := 0; q < nq; q++ {
			rows[2*q] += wireCell(insn, q, lo, hi, w)
		}
		for r := 1; r < nrows; r += 2 {
			q := (r - 1) / 2 // wire above this connector row
			switch {
			case measured && q >= insn.Qubits[0]:
				rows[r] += center("║", w, " ")
			case q >= lo && q < hi:
				rows[r] += center("│", w, " ")
			default:
				rows[r] += strings.Repeat(" ", w)
			}
		}
		if hasC {
			if measured {
				crow += cbitStyle.Render(center("╩"+strconv.Itoa(insn.Clbits[0]), w, "═"))
			} else {
				crow += cbitStyle.Render(strings.Repeat("═", w))
			}
		}
	}

	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(r)
		sb.WriteByte('\n')
	}
	if hasC {
		sb.WriteString(crow)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func span(qubits []int) (lo, hi int) {
	lo, hi = qubits[0], qubits[0]
	for _, q := range qubits[1:] {
		if q < lo {
			lo = q
		}
		if q > hi {
			hi = q
		}
	}
	return lo, hi
}

// wireCell renders instruction insn's column on qubit wire q.
func wireCell(insn ir.Instruction, q, lo, hi, w int) string {
	spec := insn.Gate
	role := -1
	for j, t := range insn.Qubits {
		if t == q {
			role = j
			break
		}
	}
	switch {
	case role < 0 && spec.BaseKind() == gate.Measure && q > insn.Qubits[0]:
		// measurement connector crossing a lower wire on its way down
		return center("╫", w, "─")
	case role < 0 && q > lo && q < hi:
		return center("┼", w, "─")
	case role < 0:
		return strings.Repeat("─", w)
	case role < spec.Controls:
		return center(gateStyle.Render("●"), w, "─")
	}
	switch spec.BaseKind() {
	case gate.Measure:
		return center(gateStyle.Render("M"), w, "─")
	case gate.Swap, gate.ISwap:
		return center(gateStyle.Render("×"), w, "─")
	case gate.X:
		if spec.Controls > 0 {
			return center(gateStyle.Render("⊕"), w, "─")
		}
	case gate.Z:
		if spec.Controls > 0 {
			return center(gateStyle.Render("●"), w, "─")
		}
	}
	return "─" + gateStyle.Render("┤"+label(spec)+"├") + "─"
}

func label(spec *gate.Spec) string {
	name := string(spec.BaseKind())
	if len(spec.Params) == 0 {
		return name
	}
	ps := make([]string, len(spec.Params))
	for i, p := range spec.Params {
		ps[i] = strconv.FormatFloat(p, 'g', 4, 64)
	}
	return name + "(" + strings.Join(ps, ",") + ")"
}

// columnWidth is the widest cell the instruction needs on any wire.
func columnWidth(insn ir.Instruction) int {
	spec := insn.Gate
	boxed := true
	switch spec.BaseKind() {
	case gate.Measure, gate.Swap, gate.ISwap:
		boxed = false
	case gate.X, gate.Z:
		boxed = spec.Controls == 0
	}
	if !boxed {
		return 5
	}
	return len(label(spec)) + 4 // box borders plus one dash each side
}

// center pads sym to width w with filler on both sides. sym may carry ANSI
// styling; visible length is taken as the styled symbol's rune count minus
// escape sequences, which for our single-rune symbols is 1 (2 for ╩ plus its
// bit index).
func center(sym string, w int, fill string) string {
	vis := visibleLen(sym)
	if vis >= w {
		return sym
	}
	left := (w - vis) / 2
	right := w - vis - left
	return strings.Repeat(fill, left) + sym + strings.Repeat(fill, right)
}

func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			continue
		}
		if inEsc {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}
