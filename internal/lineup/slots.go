package lineup

// BenchSlot is the roster slot label for players who did not start.
const BenchSlot = "BENCH"

// SlotDefinition is one starting slot in a lineup shape.
type SlotDefinition struct {
	Label    string     `json:"label"`              // e.g. "RB1", "FLEX", "SUPERFLEX"
	Eligible []Position `json:"eligible_positions"` // positions a player must hold one of
}

// SlotModel is the full starting-lineup shape for a league season: an
// ordered sequence of slot definitions plus a bench capacity. Slot order is
// significant only for display; the optimizer's result does not depend on
// it. A SlotModel is immutable after construction and safe to share across
// concurrent computations.
type SlotModel struct {
	slots         []SlotDefinition
	benchCapacity int
	labelIndex    map[string]int
	byPosition    map[Position][]int // position -> indices of slots that accept it
}

// NewSlotModel validates a lineup shape and precomputes the
// position-to-slot eligibility lookup used during optimization.
func NewSlotModel(slots []SlotDefinition, benchCapacity int) (*SlotModel, error) {
	if len(slots) == 0 {
		return nil, invalidSlotModel("no starting slots defined")
	}
	if benchCapacity < 0 {
		return nil, invalidSlotModel("negative bench capacity %d", benchCapacity)
	}

	m := &SlotModel{
		slots:         make([]SlotDefinition, len(slots)),
		benchCapacity: benchCapacity,
		labelIndex:    make(map[string]int, len(slots)),
		byPosition:    make(map[Position][]int),
	}

	for i, slot := range slots {
		if slot.Label == "" {
			return nil, invalidSlotModel("slot %d has an empty label", i)
		}
		if slot.Label == BenchSlot {
			return nil, invalidSlotModel("%q is reserved for bench players", BenchSlot)
		}
		if _, dup := m.labelIndex[slot.Label]; dup {
			return nil, invalidSlotModel("duplicate slot label %q", slot.Label)
		}
		if len(slot.Eligible) == 0 {
			return nil, invalidSlotModel("slot %q has no eligible positions", slot.Label)
		}

		seen := make(map[Position]bool, len(slot.Eligible))
		eligible := make([]Position, 0, len(slot.Eligible))
		for _, pos := range slot.Eligible {
			if !pos.Known() {
				return nil, invalidSlotModel("slot %q lists unknown position %q", slot.Label, pos)
			}
			if seen[pos] {
				continue
			}
			seen[pos] = true
			eligible = append(eligible, pos)
			m.byPosition[pos] = append(m.byPosition[pos], i)
		}

		m.slots[i] = SlotDefinition{Label: slot.Label, Eligible: eligible}
		m.labelIndex[slot.Label] = i
	}

	return m, nil
}

// NumSlots returns the number of starting slots.
func (m *SlotModel) NumSlots() int {
	return len(m.slots)
}

// Slots returns the slot definitions in display order.
func (m *SlotModel) Slots() []SlotDefinition {
	out := make([]SlotDefinition, len(m.slots))
	copy(out, m.slots)
	return out
}

// BenchCapacity returns the configured bench size. It is informational
// only; scoring treats the bench as unconstrained.
func (m *SlotModel) BenchCapacity() int {
	return m.benchCapacity
}

// SlotsForPosition returns the indices of slots a player at pos may occupy,
// in model order. Unknown positions map to no slots.
func (m *SlotModel) SlotsForPosition(pos Position) []int {
	return m.byPosition[pos]
}

// accepts reports whether a player at pos may occupy the slot at index i.
func (m *SlotModel) accepts(pos Position, i int) bool {
	for _, s := range m.byPosition[pos] {
		if s == i {
			return true
		}
	}
	return false
}

// SlotIndex resolves a slot label to its index in the model.
func (m *SlotModel) SlotIndex(label string) (int, bool) {
	i, ok := m.labelIndex[label]
	return i, ok
}

// StandardSlotModel returns the slot model for a common league format.
// Unrecognized formats fail with ErrInvalidSlotModel.
func StandardSlotModel(format string) (*SlotModel, error) {
	switch format {
	case "standard":
		return NewSlotModel([]SlotDefinition{
			{Label: "QB", Eligible: []Position{PositionQB}},
			{Label: "RB1", Eligible: []Position{PositionRB}},
			{Label: "RB2", Eligible: []Position{PositionRB}},
			{Label: "WR1", Eligible: []Position{PositionWR}},
			{Label: "WR2", Eligible: []Position{PositionWR}},
			{Label: "TE", Eligible: []Position{PositionTE}},
			{Label: "FLEX", Eligible: []Position{PositionRB, PositionWR, PositionTE}},
			{Label: "K", Eligible: []Position{PositionK}},
			{Label: "DST", Eligible: []Position{PositionDST}},
		}, 6)
	case "superflex":
		return NewSlotModel([]SlotDefinition{
			{Label: "QB", Eligible: []Position{PositionQB}},
			{Label: "RB1", Eligible: []Position{PositionRB}},
			{Label: "RB2", Eligible: []Position{PositionRB}},
			{Label: "WR1", Eligible: []Position{PositionWR}},
			{Label: "WR2", Eligible: []Position{PositionWR}},
			{Label: "TE", Eligible: []Position{PositionTE}},
			{Label: "FLEX", Eligible: []Position{PositionRB, PositionWR, PositionTE}},
			{Label: "SUPERFLEX", Eligible: []Position{PositionQB, PositionRB, PositionWR, PositionTE}},
			{Label: "K", Eligible: []Position{PositionK}},
			{Label: "DST", Eligible: []Position{PositionDST}},
		}, 6)
	case "2qb":
		return NewSlotModel([]SlotDefinition{
			{Label: "QB1", Eligible: []Position{PositionQB}},
			{Label: "QB2", Eligible: []Position{PositionQB}},
			{Label: "RB1", Eligible: []Position{PositionRB}},
			{Label: "RB2", Eligible: []Position{PositionRB}},
			{Label: "WR1", Eligible: []Position{PositionWR}},
			{Label: "WR2", Eligible: []Position{PositionWR}},
			{Label: "TE", Eligible: []Position{PositionTE}},
			{Label: "FLEX", Eligible: []Position{PositionRB, PositionWR, PositionTE}},
			{Label: "K", Eligible: []Position{PositionK}},
			{Label: "DST", Eligible: []Position{PositionDST}},
		}, 6)
	default:
		return nil, invalidSlotModel("unknown league format %q", format)
	}
}
