package assess

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

func loadFixtures(t *testing.T) map[string]message.Fixture {
	t.Helper()
	fixtures, err := message.LoadFixtures(filepath.Join("testdata", "fixtures.json"))
	require.NoError(t, err)

	byName := make(map[string]message.Fixture)
	for _, f := range fixtures {
		byName[f.Name] = f
	}
	return byName
}

func replayFixture(t *testing.T, f message.Fixture) *chess.Game {
	t.Helper()
	g, err := f.Replay()
	require.NoError(t, err)
	return g
}

func lineStrings(lines []chess.LineID) (s []string) {
	for _, l := range lines {
		s = append(s, l.String())
	}
	return
}

// requirePlanHonoursContract plays plan on a copy of g and checks that the
// turn is only ever given up by the last line.
func requirePlanHonoursContract(t *testing.T, g *chess.Game, plan Plan) chess.State {
	t.Helper()
	replay := &chess.Game{Board: g.Board.Clone(), NowPlayer: g.NowPlayer}
	state, err := replay.ApplyPlan(plan)
	require.NoError(t, err, "plan [%s]", plan)
	return state
}

func requireUntouched(t *testing.T, before, after *chess.Board) {
	t.Helper()
	assert.Equal(t, before.UnselectedLines(), after.UnselectedLines())
	assert.Equal(t, before.Cells(), after.Cells())
}

func TestNew(t *testing.T) {
	for _, name := range []string{RandomName, QuickName, SearchName} {
		p, err := New(name, WithSeed(7))
		require.NoError(t, err)
		assert.Equal(t, name, p.Name())
	}

	_, err := New("minimax")
	assert.ErrorIs(t, err, ErrUnknownPlanner)
	assert.Equal(t, []string{"quick", "rng", "search"}, Names())
}

func TestPlanRejectsNonPlayer(t *testing.T) {
	b := chess.MustNewBoard(2, 2)
	for _, name := range Names() {
		p, err := New(name)
		require.NoError(t, err)

		_, err = p.Plan(b, chess.None)
		assert.ErrorIs(t, err, chess.ErrNoPlayer, name)
	}
}

func TestPlanFinishedBoard(t *testing.T) {
	g, err := chess.Replay(1, 1, "0,0h", "0,1h", "0,0v", "1,0v")
	require.NoError(t, err)

	for _, name := range Names() {
		p, err := New(name)
		require.NoError(t, err)

		plan, err := p.Plan(g.Board, g.NowPlayer)
		require.NoError(t, err)
		assert.Empty(t, plan, name)
	}
}

func TestPlanLastLine(t *testing.T) {
	g, err := chess.Replay(1, 1, "0,0h", "0,1h", "0,0v")
	require.NoError(t, err)

	for _, name := range Names() {
		p, err := New(name)
		require.NoError(t, err)

		plan, err := p.Plan(g.Board, g.NowPlayer)
		require.NoError(t, err)
		assert.Equal(t, []string{"1,0v"}, lineStrings(plan), name)
	}
}

func TestEvaluate(t *testing.T) {
	g, err := chess.Replay(2, 2, "1,0h", "2,1v", "0,0h", "1,1h", "0,0v", "0,1v", "1,1v", "1,2h", "0,1h", "2,0v")
	require.NoError(t, err)
	before := g.Board.Clone()

	lines, err := chess.ParseLineIDs("1,0v", "0,2h")
	require.NoError(t, err)

	points, err := Evaluate(g.Board, chess.Player2, lines)
	require.NoError(t, err)
	assert.Equal(t, 3, points)
	requireUntouched(t, before, g.Board)

	lines = append(lines, lines[0])
	_, err = Evaluate(g.Board, chess.Player2, lines)
	assert.ErrorIs(t, err, chess.ErrLineSelected)
	requireUntouched(t, before, g.Board)
}

func TestMoveKey(t *testing.T) {
	a := Move{Lines: []chess.LineID{chess.MustParseLineID("1,0v"), chess.MustParseLineID("0,2h")}}
	b := Move{Lines: []chess.LineID{chess.MustParseLineID("0,2h"), chess.MustParseLineID("1,0v")}}

	assert.Equal(t, a.Key(), b.Key())
	assert.True(t, a.Contains(chess.MustParseLineID("0,2h")))
	assert.False(t, a.Contains(chess.MustParseLineID("0,0h")))
	assert.Equal(t, "1,0v 0,2h", Plan(a.Lines).String())
}

func TestPlannersOnFixtures(t *testing.T) {
	for name, f := range loadFixtures(t) {
		for _, planner := range Names() {
			t.Run(name+"/"+planner, func(t *testing.T) {
				g := replayFixture(t, f)
				before := g.Board.Clone()

				p, err := New(planner)
				require.NoError(t, err)

				plan, err := p.Plan(g.Board, g.NowPlayer)
				require.NoError(t, err)
				require.NotEmpty(t, plan)
				requireUntouched(t, before, g.Board)
				requirePlanHonoursContract(t, g, plan)
			})
		}
	}
}

func TestPlansAreReproducible(t *testing.T) {
	for name, f := range loadFixtures(t) {
		for _, planner := range Names() {
			g := replayFixture(t, f)

			plan := func() Plan {
				p, err := New(planner, WithSeed(11))
				require.NoError(t, err)
				plan, err := p.Plan(g.Board, g.NowPlayer)
				require.NoError(t, err)
				return plan
			}

			assert.Equal(t, plan(), plan(), "%s/%s", name, planner)
		}
	}
}
