package lineup

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterPlayer_Validate(t *testing.T) {
	valid := RosterPlayer{PlayerID: "rb-a", Position: PositionRB, Points: 12}
	assert.NoError(t, valid.Validate())

	missing := RosterPlayer{Position: PositionRB, Points: 12}
	err := missing.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRosterPlayer)

	nan := RosterPlayer{PlayerID: "rb-a", Position: PositionRB, Points: math.NaN()}
	err = nan.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRosterPlayer)

	// Unknown position is benched, not rejected
	mystery := RosterPlayer{PlayerID: "x", Position: "??", Points: 5}
	assert.NoError(t, mystery.Validate())
}
