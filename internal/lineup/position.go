package lineup

import "strings"

// Position is a player's roster position. The set is closed: slot models
// only accept positions listed here, so a typo in league configuration is
// rejected up front instead of silently matching nothing.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDST Position = "DST"
	// IDP leagues
	PositionDL Position = "DL"
	PositionLB Position = "LB"
	PositionDB Position = "DB"
)

var knownPositions = map[Position]bool{
	PositionQB:  true,
	PositionRB:  true,
	PositionWR:  true,
	PositionTE:  true,
	PositionK:   true,
	PositionDST: true,
	PositionDL:  true,
	PositionLB:  true,
	PositionDB:  true,
}

// ParsePosition normalizes and validates a position string. The second
// return value is false for anything outside the known set.
func ParsePosition(s string) (Position, bool) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	if p == "D/ST" {
		p = PositionDST
	}
	return p, knownPositions[p]
}

// Known reports whether p is a member of the closed position set.
func (p Position) Known() bool {
	return knownPositions[p]
}
