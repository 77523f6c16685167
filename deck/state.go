package deck

import (
	"math"
	"math/cmplx"
)

// StateVector holds 2^n amplitudes with bit q of the basis index carried by
// local qubit q. It is the library's native simulation facility; the matrix
// adapter derives per-gate unitaries from it by driving basis columns.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

func NewStateVector(numQubits int) *StateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// SetBasis resets the state to the computational basis state |idx>.
func (s *StateVector) SetBasis(idx int) {
	for i := range s.Amplitudes {
		s.Amplitudes[i] = 0
	}
	s.Amplitudes[idx] = 1
}

// ApplyGate applies one gate in place. control is ignored (-1) for
// single-qubit types; for SWAP it is the first exchanged wire.
func (s *StateVector) ApplyGate(gateType string, target, control int, params []float64) {
	theta := 0.0
	if len(params) > 0 {
		theta = params[0]
	}
	switch gateType {
	case "I":
	case "H":
		s.applyH(target)
	case "X":
		s.applyX(target)
	case "Y":
		s.applyY(target)
	case "Z":
		s.applyPhase(target, math.Pi)
	case "S":
		s.applyPhase(target, math.Pi/2)
	case "SDG":
		s.applyPhase(target, -math.Pi/2)
	case "T":
		s.applyPhase(target, math.Pi/4)
	case "TDG":
		s.applyPhase(target, -math.Pi/4)
	case "RX":
		s.applyRX(target, theta)
	case "RY":
		s.applyRY(target, theta)
	case "RZ":
		s.applyRZ(target, theta)
	case "P":
		s.applyPhase(target, theta)
	case "CX":
		s.applyCX(control, target)
	case "CZ":
		s.applyCZ(control, target)
	case "SWAP":
		s.applySWAP(control, target)
	}
}

func (s *StateVector) applyH(q int) {
	h := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	amps := s.Amplitudes
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			amps[i], amps[j] = h*(amps[i]+amps[j]), h*(amps[i]-amps[j])
		}
	}
}

func (s *StateVector) applyX(q int) {
	bit := 1 << q
	amps := s.Amplitudes
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			amps[i], amps[j] = amps[j], amps[i]
		}
	}
}

func (s *StateVector) applyY(q int) {
	bit := 1 << q
	amps := s.Amplitudes
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			amps[i], amps[j] = 1i*amps[j], -1i*amps[i]
		}
	}
}

func (s *StateVector) applyPhase(q int, theta float64) {
	bit := 1 << q
	phase := cmplx.Exp(complex(0, theta))
	amps := s.Amplitudes
	for i := range amps {
		if i&bit != 0 {
			amps[i] *= phase
		}
	}
}

func (s *StateVector) applyRX(q int, theta float64) {
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	amps := s.Amplitudes
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			amps[i], amps[j] = c*amps[i]+js*amps[j], js*amps[i]+c*amps[j]
		}
	}
}

func (s *StateVector) applyRY(q int, theta float64) {
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	amps := s.Amplitudes
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			amps[i], amps[j] = c*amps[i]-sn*amps[j], sn*amps[i]+c*amps[j]
		}
	}
}

func (s *StateVector) applyRZ(q int, theta float64) {
	bit := 1 << q
	phase := cmplx.Exp(complex(0, theta/2))
	amps := s.Amplitudes
	for i := range amps {
		if i&bit != 0 {
			amps[i] *= phase
		} else {
			amps[i] *= cmplx.Conj(phase)
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	amps := s.Amplitudes
	for i := range amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			amps[i], amps[j] = amps[j], amps[i]
		}
	}
}

func (s *StateVector) applyCZ(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	amps := s.Amplitudes
	for i := range amps {
		if i&cBit != 0 && i&tBit != 0 {
			amps[i] *= -1
		}
	}
}

func (s *StateVector) applySWAP(q1, q2 int) {
	bit1 := 1 << q1
	bit2 := 1 << q2
	amps := s.Amplitudes
	for i := range amps {
		if i&bit1 != 0 && i&bit2 == 0 {
			j := (i &^ bit1) | bit2
			amps[i], amps[j] = amps[j], amps[i]
		}
	}
}
