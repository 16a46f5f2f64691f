package lineup

import "sort"

// BenchImpact records one lineup move a manager left on the bench: a bench
// player who would have outscored the actual starter in a slot they were
// eligible for.
type BenchImpact struct {
	BenchPlayer RosterPlayer  `json:"bench_player"`
	Slot        string        `json:"slot"`
	Starter     *RosterPlayer `json:"starter,omitempty"`
	Delta       float64       `json:"delta"`
}

// ComputeBenchImpact compares every bench player against the actual starter
// in each slot the bench player is eligible for, emitting a record wherever
// the bench player scored strictly more. Each slot comparison is independent
// and reported separately: moving a RB/WR into the RB slot and moving them
// into FLEX are different lineup moves, so a bench player eligible for both
// can appear twice. A slot with no usable starter counts as zero points.
func ComputeBenchImpact(roster []RosterPlayer, model *SlotModel) ([]BenchImpact, error) {
	if model == nil {
		return nil, invalidSlotModel("nil slot model")
	}

	starters := actualStarters(roster, model)
	starterIDs := make(map[string]bool, len(starters))
	for _, s := range starters {
		if s != nil {
			starterIDs[s.PlayerID] = true
		}
	}

	// The bench is everyone who did not actually start. A player whose
	// record claims an already-taken or ineligible slot did not start any
	// more than one labeled BENCH did.
	bench := make([]RosterPlayer, 0, len(roster))
	for _, p := range roster {
		if p.malformed() || starterIDs[p.PlayerID] {
			continue
		}
		bench = append(bench, p)
	}
	sort.Slice(bench, func(a, b int) bool {
		if bench[a].Points != bench[b].Points {
			return bench[a].Points > bench[b].Points
		}
		return bench[a].PlayerID < bench[b].PlayerID
	})

	impacts := make([]BenchImpact, 0)
	for _, p := range bench {
		for _, s := range model.SlotsForPosition(p.Position) {
			starter := starters[s]
			starterPoints := 0.0
			if starter != nil {
				starterPoints = starter.Points
			}
			if p.Points <= starterPoints {
				continue
			}
			impacts = append(impacts, BenchImpact{
				BenchPlayer: p,
				Slot:        model.slots[s].Label,
				Starter:     starter,
				Delta:       p.Points - starterPoints,
			})
		}
	}

	return impacts, nil
}
