package state

import "fmt"

// Phase is where a session stands in its lifecycle
type Phase int

// Session phases
const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseTreasureOffered
	PhaseTreasureHeld
	PhaseWon
)

var phaseNames = map[Phase]string{
	PhaseIdle:            "idle",
	PhasePlaying:         "playing",
	PhaseTreasureOffered: "treasure-offered",
	PhaseTreasureHeld:    "treasure-held",
	PhaseWon:             "won",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// AcceptsMoves reports whether moves may change state in this phase
func (p Phase) AcceptsMoves() bool {
	return p == PhasePlaying || p == PhaseTreasureHeld
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name
func (p *Phase) UnmarshalText(b []byte) error {
	for phase, name := range phaseNames {
		if name == string(b) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", string(b))
}
