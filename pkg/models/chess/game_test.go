package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameAddPassesTurn(t *testing.T) {
	g, err := NewGame(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Player1, g.NowPlayer)

	for i, m := range []string{"0,0h", "0,1h", "0,0v"} {
		claimed, err := g.Add(MustParseLineID(m))
		require.NoError(t, err)
		assert.Empty(t, claimed)
		assert.Equal(t, i%2 == 0, g.NowPlayer == Player2, m)
	}

	claimed, err := g.Add(MustParseLineID("1,0v"))
	require.NoError(t, err)
	assert.Len(t, claimed, 1)
	assert.Equal(t, Player2, g.NowPlayer)
	assert.True(t, g.Over())
	assert.Equal(t, 4, g.StepCount())
}

func TestReplayFixture(t *testing.T) {
	g, err := Replay(2, 2, "1,0h", "2,1v", "0,0h", "1,1h", "0,0v", "0,1v", "1,1v", "1,2h", "0,1h", "2,0v")
	require.NoError(t, err)

	assert.Equal(t, Player2, g.NowPlayer)
	s := g.Scores()
	assert.Equal(t, 0, s.Player1)
	assert.Equal(t, 1, s.Player2)
	assert.Equal(t, []string{"0,2h", "1,0v"}, lineStrings(g.UnselectedLines()))
}

func TestReplayErrors(t *testing.T) {
	_, err := Replay(2, 2, "0,0h", "0,0h")
	assert.ErrorIs(t, err, ErrLineSelected)

	_, err = Replay(2, 2, "0,0q")
	assert.ErrorIs(t, err, ErrMalformedLine)

	_, err = Replay(0, 2)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestApplyPlanPlanExhausted(t *testing.T) {
	g, err := Replay(1, 1, "0,0h", "0,1h", "0,0v")
	require.NoError(t, err)
	require.Equal(t, Player2, g.NowPlayer)

	state, err := g.ApplyPlan([]LineID{MustParseLineID("1,0v")})
	require.NoError(t, err)
	assert.Equal(t, PlanExhausted, state)
	assert.Equal(t, Player2, g.NowPlayer)
	assert.Equal(t, 1, g.Scores().Player2)

	state, err = g.ApplyPlan(nil)
	assert.NoError(t, err)
	assert.Equal(t, AwaitingPlan, state)
}

func TestApplyPlanTurnEnded(t *testing.T) {
	g, err := NewGame(2, 2)
	require.NoError(t, err)

	state, err := g.ApplyPlan([]LineID{MustParseLineID("0,0h")})
	require.NoError(t, err)
	assert.Equal(t, TurnEndedNaturally, state)
	assert.Equal(t, Player2, g.NowPlayer)
}

func TestApplyPlanContractViolation(t *testing.T) {
	g, err := NewGame(2, 2)
	require.NoError(t, err)

	plan := []LineID{MustParseLineID("0,0h"), MustParseLineID("1,2h")}
	_, err = g.ApplyPlan(plan)

	var violation *ContractViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, Player1, violation.Player)
	assert.Equal(t, 1, violation.Index)
	assert.Equal(t, plan, violation.Plan)
	assert.Equal(t, []string{"0,0h"}, lineStrings(violation.History))
	assert.Contains(t, err.Error(), "1,2h")
	assert.False(t, g.Selected(MustParseLineID("1,2h")))
}

func TestApplyPlanEmpty(t *testing.T) {
	g, err := NewGame(2, 2)
	require.NoError(t, err)

	_, err = g.ApplyPlan(nil)
	assert.ErrorIs(t, err, ErrEmptyPlan)
}

func TestPlayerString(t *testing.T) {
	assert.Equal(t, "Player1", Player1.String())
	assert.Equal(t, "Player2", Player2.String())
	assert.Equal(t, "None", None.String())
	assert.Equal(t, Player2, Player1.Opponent())
}

func lineStrings(lines []LineID) (s []string) {
	for _, l := range lines {
		s = append(s, l.String())
	}
	return
}
