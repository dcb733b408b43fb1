package champion

import "errors"

var ErrRosterSize = errors.New("roster must have 10 players")
var ErrTeamSplit = errors.New("roster must split 5/5 between blue and red")

type Team string

const (
	TeamBlue Team = "Blue"
	TeamRed  Team = "Red"
)

// Slot is one of the four active abilities. The passive is never tracked.
type Slot int

const (
	SlotQ Slot = iota
	SlotW
	SlotE
	SlotR
)

// Slots lists every ability slot in display order.
var Slots = [4]Slot{SlotQ, SlotW, SlotE, SlotR}

func (s Slot) String() string {
	switch s {
	case SlotQ:
		return "Q"
	case SlotW:
		return "W"
	case SlotE:
		return "E"
	case SlotR:
		return "R"
	default:
		return "?"
	}
}
