package lineup

// SlotComparison is the counterfactual for one starting slot: who actually
// started there against who the optimizer would have started.
type SlotComparison struct {
	Slot          string        `json:"slot"`
	ActualPlayer  *RosterPlayer `json:"actual_player,omitempty"`
	ActualPoints  float64       `json:"actual_points"`
	OptimalPlayer *RosterPlayer `json:"optimal_player,omitempty"`
	OptimalPoints float64       `json:"optimal_points"`
	Delta         float64       `json:"delta"`
}

// EfficiencyReport measures how close a manager's as-played lineup came to
// the optimum for the same roster-week.
type EfficiencyReport struct {
	ActualPoints   float64          `json:"actual_points"`
	OptimalPoints  float64          `json:"optimal_points"`
	Efficiency     float64          `json:"efficiency"`
	Slots          []SlotComparison `json:"slots"`
	SkippedPlayers int              `json:"skipped_players"`
}

// ComputeEfficiency scores the roster's actual lineup, read from each
// player's RosterSlot field, against the computed optimum. A RosterSlot that
// names no slot in the model (stale or mismatched upstream data) leaves that
// player out of the actual total and the slot reported empty; a single bad
// record never aborts the report. An optimal total of zero yields an
// efficiency of zero, never a division error.
func ComputeEfficiency(roster []RosterPlayer, model *SlotModel) (*EfficiencyReport, error) {
	optimal, err := ComputeOptimalLineup(roster, model)
	if err != nil {
		return nil, err
	}

	actual := actualStarters(roster, model)

	report := &EfficiencyReport{
		OptimalPoints:  optimal.TotalPoints,
		Slots:          make([]SlotComparison, model.NumSlots()),
		SkippedPlayers: optimal.SkippedPlayers,
	}

	for s, def := range model.slots {
		cmp := SlotComparison{Slot: def.Label}
		if p := actual[s]; p != nil {
			cmp.ActualPlayer = p
			cmp.ActualPoints = p.Points
			report.ActualPoints += p.Points
		}
		if p := optimal.Slots[s].Player; p != nil {
			cmp.OptimalPlayer = p
			cmp.OptimalPoints = p.Points
		}
		cmp.Delta = cmp.OptimalPoints - cmp.ActualPoints
		report.Slots[s] = cmp
	}

	if report.OptimalPoints > 0 {
		report.Efficiency = report.ActualPoints / report.OptimalPoints
	}

	return report, nil
}

// actualStarters resolves RosterSlot fields to slot indices. Only the first
// usable player claiming a slot counts, and only if their position is
// eligible for it; duplicates and ineligible claims are stale data and are
// ignored the same way an unknown label is. Without the eligibility check
// a mismatched upstream record could push the reported efficiency above 1.
func actualStarters(roster []RosterPlayer, model *SlotModel) []*RosterPlayer {
	starters := make([]*RosterPlayer, model.NumSlots())
	for i := range roster {
		p := roster[i]
		if p.malformed() || p.RosterSlot == "" || p.RosterSlot == BenchSlot {
			continue
		}
		s, ok := model.SlotIndex(p.RosterSlot)
		if !ok || starters[s] != nil || !model.accepts(p.Position, s) {
			continue
		}
		starters[s] = &p
	}
	return starters
}
