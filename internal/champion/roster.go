package champion

import (
	"encoding/json"
	"fmt"
)

const (
	RosterSize = 10
	TeamSize   = RosterSize / 2
)

type Player struct {
	Champion string
	Team     Team
}

// Roster is the list of players of one live match, in telemetry order.
type Roster []Player

func (r Roster) Count(team Team) int {
	n := 0
	for _, p := range r {
		if p.Team == team {
			n++
		}
	}
	return n
}

// Validate checks the 10 player, 5/5 shape of a regular match.
func (r Roster) Validate() error {
	if len(r) != RosterSize {
		return fmt.Errorf("%w: got %d", ErrRosterSize, len(r))
	}
	if blue, red := r.Count(TeamBlue), r.Count(TeamRed); blue != TeamSize || red != TeamSize {
		return fmt.Errorf("%w: got %d/%d", ErrTeamSplit, blue, red)
	}
	return nil
}

// Lineup orders a valid roster blue side first.
func (r Roster) Lineup() (Lineup, error) {
	var l Lineup
	if err := r.Validate(); err != nil {
		return l, err
	}
	blue, red := 0, TeamSize
	for _, p := range r {
		if p.Team == TeamBlue {
			l[blue] = p.Champion
			blue++
		} else {
			l[red] = p.Champion
			red++
		}
	}
	return l, nil
}

// Lineup is the overlay's ordered view of a match: ten slots where team
// membership only depends on the slot index.
type Lineup [RosterSize]string

func (l Lineup) Team(team Team) []string {
	if team == TeamBlue {
		return append([]string(nil), l[:TeamSize]...)
	}
	return append([]string(nil), l[TeamSize:]...)
}

type lineupJSON struct {
	Blue []string `json:"blue"`
	Red  []string `json:"red"`
}

func (l Lineup) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineupJSON{Blue: l.Team(TeamBlue), Red: l.Team(TeamRed)})
}

func (l *Lineup) UnmarshalJSON(data []byte) error {
	var raw lineupJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Blue) != TeamSize || len(raw.Red) != TeamSize {
		return fmt.Errorf("%w: got %d/%d", ErrTeamSplit, len(raw.Blue), len(raw.Red))
	}
	copy(l[:TeamSize], raw.Blue)
	copy(l[TeamSize:], raw.Red)
	return nil
}
