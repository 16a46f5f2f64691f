package lineup

import (
	"fmt"
	"math"
)

// RosterPlayer is one player on a fantasy team for a given week. Points may
// be actual or projected; the engine does not care which the caller passes.
// RosterSlot is the slot the player actually occupied that week (a slot
// label or BenchSlot) and is used only for efficiency and bench-impact
// comparisons, never for computing the optimum.
type RosterPlayer struct {
	PlayerID   string   `json:"player_id"`
	Position   Position `json:"position"`
	Points     float64  `json:"points"`
	RosterSlot string   `json:"roster_slot"`
}

// Validate reports why the record cannot participate in assignment. The
// error unwraps to ErrMalformedRosterPlayer. An unknown position is not a
// validation failure: such players are eligible for no slot and bench.
func (p RosterPlayer) Validate() error {
	if p.PlayerID == "" {
		return fmt.Errorf("%w: missing player id", ErrMalformedRosterPlayer)
	}
	if math.IsNaN(p.Points) || math.IsInf(p.Points, 0) {
		return fmt.Errorf("%w: %s has non-finite points", ErrMalformedRosterPlayer, p.PlayerID)
	}
	return nil
}

func (p RosterPlayer) malformed() bool {
	return p.Validate() != nil
}

// splitRoster separates usable records from malformed ones. Malformed
// records are excluded and counted, not fatal: one bad upstream record must
// not abort a league-wide report.
func splitRoster(roster []RosterPlayer) (usable []RosterPlayer, skipped int) {
	usable = make([]RosterPlayer, 0, len(roster))
	for _, p := range roster {
		if p.malformed() {
			skipped++
			continue
		}
		usable = append(usable, p)
	}
	return usable, skipped
}
