package lineup

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func flexModel(t *testing.T) *SlotModel {
	t.Helper()
	model, err := NewSlotModel([]SlotDefinition{
		{Label: "RB1", Eligible: []Position{PositionRB}},
		{Label: "WR1", Eligible: []Position{PositionWR}},
		{Label: "FLEX", Eligible: []Position{PositionRB, PositionWR, PositionTE}},
	}, 4)
	require.NoError(t, err)
	return model
}

func flexRoster() []RosterPlayer {
	return []RosterPlayer{
		{PlayerID: "rb-a", Position: PositionRB, Points: 12, RosterSlot: "RB1"},
		{PlayerID: "rb-b", Position: PositionRB, Points: 9, RosterSlot: "FLEX"},
		{PlayerID: "wr-a", Position: PositionWR, Points: 15, RosterSlot: "WR1"},
		{PlayerID: "wr-b", Position: PositionWR, Points: 4, RosterSlot: BenchSlot},
		{PlayerID: "te-a", Position: PositionTE, Points: 11, RosterSlot: BenchSlot},
	}
}

func TestComputeOptimalLineup_FlexScenario(t *testing.T) {
	result, err := ComputeOptimalLineup(flexRoster(), flexModel(t))
	require.NoError(t, err)

	assert.Equal(t, "rb-a", result.Player("RB1").PlayerID)
	assert.Equal(t, "wr-a", result.Player("WR1").PlayerID)
	// TE at 11 beats the second RB at 9 for FLEX
	assert.Equal(t, "te-a", result.Player("FLEX").PlayerID)
	assert.Equal(t, 38.0, result.TotalPoints)
	assert.Equal(t, 0, result.SkippedPlayers)

	require.Len(t, result.Bench, 2)
	assert.Equal(t, "rb-b", result.Bench[0].PlayerID)
	assert.Equal(t, "wr-b", result.Bench[1].PlayerID)
}

func TestComputeOptimalLineup_DisplacesAcrossSlots(t *testing.T) {
	// Filling FLEX first with the best eligible player and never revisiting
	// would strand the dedicated RB slot. The matching must relocate the RB.
	model, err := NewSlotModel([]SlotDefinition{
		{Label: "FLEX", Eligible: []Position{PositionRB, PositionWR}},
		{Label: "RB", Eligible: []Position{PositionRB}},
	}, 2)
	require.NoError(t, err)

	roster := []RosterPlayer{
		{PlayerID: "rb-1", Position: PositionRB, Points: 10},
		{PlayerID: "wr-1", Position: PositionWR, Points: 8},
	}

	result, err := ComputeOptimalLineup(roster, model)
	require.NoError(t, err)

	assert.Equal(t, 18.0, result.TotalPoints)
	assert.Equal(t, "rb-1", result.Player("RB").PlayerID)
	assert.Equal(t, "wr-1", result.Player("FLEX").PlayerID)
}

func TestComputeOptimalLineup_SlotOrderIndependent(t *testing.T) {
	forward := flexModel(t)
	reversed, err := NewSlotModel([]SlotDefinition{
		{Label: "FLEX", Eligible: []Position{PositionRB, PositionWR, PositionTE}},
		{Label: "WR1", Eligible: []Position{PositionWR}},
		{Label: "RB1", Eligible: []Position{PositionRB}},
	}, 4)
	require.NoError(t, err)

	a, err := ComputeOptimalLineup(flexRoster(), forward)
	require.NoError(t, err)
	b, err := ComputeOptimalLineup(flexRoster(), reversed)
	require.NoError(t, err)

	assert.Equal(t, a.TotalPoints, b.TotalPoints)
	for _, label := range []string{"RB1", "WR1", "FLEX"} {
		assert.Equal(t, a.Player(label).PlayerID, b.Player(label).PlayerID,
			"slot %s should get the same player regardless of declaration order", label)
	}
}

func TestComputeOptimalLineup_Idempotent(t *testing.T) {
	model := flexModel(t)
	first, err := ComputeOptimalLineup(flexRoster(), model)
	require.NoError(t, err)
	second, err := ComputeOptimalLineup(flexRoster(), model)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeOptimalLineup_TieBreakLowerPlayerID(t *testing.T) {
	model, err := NewSlotModel([]SlotDefinition{
		{Label: "RB1", Eligible: []Position{PositionRB}},
	}, 2)
	require.NoError(t, err)

	roster := []RosterPlayer{
		{PlayerID: "player-2", Position: PositionRB, Points: 14},
		{PlayerID: "player-1", Position: PositionRB, Points: 14},
	}

	for i := 0; i < 10; i++ {
		result, err := ComputeOptimalLineup(roster, model)
		require.NoError(t, err)
		assert.Equal(t, "player-1", result.Player("RB1").PlayerID)
	}
}

func TestComputeOptimalLineup_EmptyRoster(t *testing.T) {
	result, err := ComputeOptimalLineup(nil, flexModel(t))
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.TotalPoints)
	assert.Empty(t, result.Bench)
	for _, slot := range result.Slots {
		assert.Nil(t, slot.Player, "slot %s should be empty", slot.Slot)
	}
}

func TestComputeOptimalLineup_UnfillableSlotLeftEmpty(t *testing.T) {
	roster := []RosterPlayer{
		{PlayerID: "rb-a", Position: PositionRB, Points: 12},
	}

	result, err := ComputeOptimalLineup(roster, flexModel(t))
	require.NoError(t, err)

	assert.Equal(t, "rb-a", result.Player("RB1").PlayerID)
	assert.Nil(t, result.Player("WR1"))
	assert.Nil(t, result.Player("FLEX"))
	assert.Equal(t, 12.0, result.TotalPoints)
}

func TestComputeOptimalLineup_MalformedPlayersSkipped(t *testing.T) {
	roster := append(flexRoster(),
		RosterPlayer{PlayerID: "", Position: PositionRB, Points: 99},
		RosterPlayer{PlayerID: "nan-guy", Position: PositionWR, Points: math.NaN()},
	)

	result, err := ComputeOptimalLineup(roster, flexModel(t))
	require.NoError(t, err)

	assert.Equal(t, 2, result.SkippedPlayers)
	assert.Equal(t, 38.0, result.TotalPoints)
}

func TestComputeOptimalLineup_UnknownPositionBenched(t *testing.T) {
	roster := append(flexRoster(),
		RosterPlayer{PlayerID: "mystery", Position: "??", Points: 50})

	result, err := ComputeOptimalLineup(roster, flexModel(t))
	require.NoError(t, err)

	// Not malformed, just ineligible everywhere: benched, never started
	assert.Equal(t, 0, result.SkippedPlayers)
	assert.Equal(t, 38.0, result.TotalPoints)
	assert.Equal(t, "mystery", result.Bench[0].PlayerID)
}

func TestComputeOptimalLineup_NegativePointsBenched(t *testing.T) {
	model, err := NewSlotModel([]SlotDefinition{
		{Label: "RB1", Eligible: []Position{PositionRB}},
	}, 2)
	require.NoError(t, err)

	roster := []RosterPlayer{
		{PlayerID: "rb-a", Position: PositionRB, Points: -5},
	}

	result, err := ComputeOptimalLineup(roster, model)
	require.NoError(t, err)

	// An empty slot scores 0, which beats starting the -5
	assert.Nil(t, result.Player("RB1"))
	assert.Equal(t, 0.0, result.TotalPoints)
	require.Len(t, result.Bench, 1)
	assert.Equal(t, "rb-a", result.Bench[0].PlayerID)
}

func TestComputeOptimalLineup_NegativeMixedWithPositive(t *testing.T) {
	// Negative K/DST weeks happen; only the negative scorer sits
	model, err := NewSlotModel([]SlotDefinition{
		{Label: "RB1", Eligible: []Position{PositionRB}},
		{Label: "DST", Eligible: []Position{PositionDST}},
	}, 2)
	require.NoError(t, err)

	roster := []RosterPlayer{
		{PlayerID: "rb-a", Position: PositionRB, Points: 12},
		{PlayerID: "dst-a", Position: PositionDST, Points: -3},
	}

	result, err := ComputeOptimalLineup(roster, model)
	require.NoError(t, err)

	assert.Equal(t, "rb-a", result.Player("RB1").PlayerID)
	assert.Nil(t, result.Player("DST"))
	assert.Equal(t, 12.0, result.TotalPoints)
}

func TestComputeOptimalLineup_NilModel(t *testing.T) {
	_, err := ComputeOptimalLineup(flexRoster(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSlotModel)
}

// bruteForceBest enumerates every legal assignment, empty slots included,
// and returns the best achievable total.
func bruteForceBest(players []RosterPlayer, model *SlotModel) float64 {
	used := make([]bool, len(players))
	best := 0.0
	var fill func(slot int, total float64)
	fill = func(slot int, total float64) {
		if slot == model.NumSlots() {
			if total > best {
				best = total
			}
			return
		}
		fill(slot+1, total) // leave this slot empty
		for i, p := range players {
			if used[i] {
				continue
			}
			for _, s := range model.SlotsForPosition(p.Position) {
				if s == slot {
					used[i] = true
					fill(slot+1, total+p.Points)
					used[i] = false
					break
				}
			}
		}
	}
	fill(0, 0)
	return best
}

func TestComputeOptimalLineup_MatchesBruteForce(t *testing.T) {
	model := flexModel(t)
	positions := []Position{PositionRB, PositionWR, PositionTE, PositionK}
	rng := rand.New(rand.NewSource(1863))

	for trial := 0; trial < 250; trial++ {
		size := rng.Intn(7)
		roster := make([]RosterPlayer, size)
		for i := range roster {
			roster[i] = RosterPlayer{
				PlayerID: string(rune('a' + i)),
				Position: positions[rng.Intn(len(positions))],
				// Negative scores included: benching must beat starting them
				Points: float64(rng.Intn(80)-20) / 2,
			}
		}

		result, err := ComputeOptimalLineup(roster, model)
		require.NoError(t, err)

		want := bruteForceBest(roster, model)
		assert.InDelta(t, want, result.TotalPoints, 1e-9,
			"trial %d: optimizer disagrees with brute force for roster %+v", trial, roster)
	}
}

func TestComputeOptimalLineup_BeatsEveryFullAssignment(t *testing.T) {
	model := flexModel(t)
	roster := []RosterPlayer{
		{PlayerID: "rb-a", Position: PositionRB, Points: 12},
		{PlayerID: "rb-b", Position: PositionRB, Points: 9},
		{PlayerID: "wr-a", Position: PositionWR, Points: 15},
		{PlayerID: "wr-b", Position: PositionWR, Points: 4},
		{PlayerID: "te-a", Position: PositionTE, Points: 11},
	}

	result, err := ComputeOptimalLineup(roster, model)
	require.NoError(t, err)

	eligible := func(p RosterPlayer, slot int) bool {
		for _, s := range model.SlotsForPosition(p.Position) {
			if s == slot {
				return true
			}
		}
		return false
	}

	bestFull := 0.0
	for _, perm := range combin.Permutations(len(roster), model.NumSlots()) {
		total := 0.0
		legal := true
		for slot, playerIdx := range perm {
			if !eligible(roster[playerIdx], slot) {
				legal = false
				break
			}
			total += roster[playerIdx].Points
		}
		if !legal {
			continue
		}
		assert.GreaterOrEqual(t, result.TotalPoints, total)
		if total > bestFull {
			bestFull = total
		}
	}

	assert.Equal(t, bestFull, result.TotalPoints)
}
