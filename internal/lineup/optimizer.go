package lineup

import "sort"

// AssignedSlot pairs a slot label with the player chosen to fill it. Player
// is nil when no eligible player remained for the slot, which contributes
// zero points and is not an error.
type AssignedSlot struct {
	Slot   string        `json:"slot"`
	Player *RosterPlayer `json:"player,omitempty"`
}

// LineupAssignment is the maximum-points legal assignment of a roster to a
// slot model. Slots appear in model order; Bench holds every usable player
// left unassigned. Immutable once produced.
type LineupAssignment struct {
	Slots          []AssignedSlot `json:"slots"`
	Bench          []RosterPlayer `json:"bench"`
	TotalPoints    float64        `json:"total_points"`
	SkippedPlayers int            `json:"skipped_players"`
}

// Player returns the player assigned to the labeled slot, or nil if the
// slot is empty or the label is not part of the assignment.
func (a *LineupAssignment) Player(label string) *RosterPlayer {
	for i := range a.Slots {
		if a.Slots[i].Slot == label {
			return a.Slots[i].Player
		}
	}
	return nil
}

// ComputeOptimalLineup computes the assignment of players to starting slots
// that maximizes total points, subject to per-slot position eligibility.
//
// The slot/player eligibility structure is a transversal matroid, so the
// classic matroid greedy applies: take players in descending point order and
// admit each one iff the matching over slots can be augmented to include it
// (Kuhn's augmenting-path search). This is globally optimal where the
// tempting fill-each-slot-with-its-best-remaining-player greedy is not: a
// high scorer eligible for several competing slots (RB/WR in a FLEX league)
// can displace a prior pick to a different slot instead of bumping it off
// the lineup. Ordering ties by PlayerID makes the chosen players, not just
// the total, deterministic. Players with negative points are always
// benched: leaving a slot empty contributes 0, which beats any negative
// starter.
//
// Pure function: no I/O, no shared state, same inputs always yield the same
// assignment.
func ComputeOptimalLineup(roster []RosterPlayer, model *SlotModel) (*LineupAssignment, error) {
	if model == nil {
		return nil, invalidSlotModel("nil slot model")
	}

	usable, skippedCount := splitRoster(roster)

	candidates := make([]int, len(usable))
	for i := range usable {
		candidates[i] = i
	}
	sort.Slice(candidates, func(a, b int) bool {
		pa, pb := usable[candidates[a]], usable[candidates[b]]
		if pa.Points != pb.Points {
			return pa.Points > pb.Points
		}
		return pa.PlayerID < pb.PlayerID
	})

	// slotOwner[s] is the index into usable of the player holding slot s.
	slotOwner := make([]int, model.NumSlots())
	for i := range slotOwner {
		slotOwner[i] = -1
	}
	assigned := make([]bool, len(usable))

	for _, idx := range candidates {
		// Candidates are sorted by points, so the first negative score ends
		// the search: an empty slot scores 0, starting a negative player
		// can only lower the total.
		if usable[idx].Points < 0 {
			break
		}
		visited := make([]bool, model.NumSlots())
		if augment(idx, usable, model, slotOwner, visited) {
			assigned[idx] = true
		}
	}

	result := &LineupAssignment{
		Slots:          make([]AssignedSlot, model.NumSlots()),
		SkippedPlayers: skippedCount,
	}
	for s, def := range model.slots {
		result.Slots[s] = AssignedSlot{Slot: def.Label}
		if owner := slotOwner[s]; owner >= 0 {
			player := usable[owner]
			result.Slots[s].Player = &player
			result.TotalPoints += player.Points
		}
	}

	bench := make([]RosterPlayer, 0, len(usable))
	for i, p := range usable {
		if !assigned[i] {
			bench = append(bench, p)
		}
	}
	sort.Slice(bench, func(a, b int) bool {
		if bench[a].Points != bench[b].Points {
			return bench[a].Points > bench[b].Points
		}
		return bench[a].PlayerID < bench[b].PlayerID
	})
	result.Bench = bench

	return result, nil
}

// augment tries to place player idx into some eligible slot, recursively
// relocating current owners. Slots are scanned in model order so the search
// is deterministic for a given input.
func augment(idx int, players []RosterPlayer, model *SlotModel, slotOwner []int, visited []bool) bool {
	for _, s := range model.SlotsForPosition(players[idx].Position) {
		if visited[s] {
			continue
		}
		visited[s] = true
		if slotOwner[s] == -1 || augment(slotOwner[s], players, model, slotOwner, visited) {
			slotOwner[s] = idx
			return true
		}
	}
	return false
}
