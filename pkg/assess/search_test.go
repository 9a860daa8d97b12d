package assess

import (
	"testing"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/tunnel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFixtures(t *testing.T) {
	fixtures := loadFixtures(t)

	tests := []struct {
		name   string
		prefix []string
		whole  bool
	}{
		{name: "two by two", whole: true},
		{name: "ai completes half closed chain", whole: true},
		{name: "ai completes closed chain", prefix: []string{"4,1v", "4,2h"}},
		{name: "ai semi-selects half closed chain to keep control", prefix: []string{"1,4h", "1,3v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fixtures[tt.name]
			g := replayFixture(t, f)

			plan, err := NewSearch().Plan(g.Board, g.NowPlayer)
			require.NoError(t, err)

			got := lineStrings(plan)
			if tt.whole {
				assert.ElementsMatch(t, f.Expected, got)
				return
			}
			require.GreaterOrEqual(t, len(got), len(tt.prefix))
			assert.Equal(t, tt.prefix, got[:len(tt.prefix)])
		})
	}
}

func TestSearchEvaluate(t *testing.T) {
	g := replayFixture(t, loadFixtures(t)["two by two"])
	before := g.Board.Clone()

	moves, err := NewSearch().Evaluate(g.Board, g.NowPlayer)
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	requireUntouched(t, before, g.Board)

	seen := make(map[string]bool)
	for i, m := range moves {
		if i > 0 {
			assert.LessOrEqual(t, m.Points, moves[i-1].Points)
		}
		assert.False(t, seen[m.Key()], "duplicate candidate [%s]", Plan(m.Lines))
		seen[m.Key()] = true

		points, err := Evaluate(g.Board, g.NowPlayer, m.Lines)
		require.NoError(t, err)
		assert.Equal(t, m.Points, points, "[%s]", Plan(m.Lines))
	}
	assert.Equal(t, 3, moves[0].Points)
}

func TestSearchEvaluateFinishedBoard(t *testing.T) {
	g, err := chess.Replay(1, 1, "0,0h", "0,1h", "0,0v", "1,0v")
	require.NoError(t, err)

	moves, err := NewSearch().Evaluate(g.Board, g.NowPlayer)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestSearchExpansionLimit(t *testing.T) {
	for name, f := range loadFixtures(t) {
		t.Run(name, func(t *testing.T) {
			g := replayFixture(t, f)
			before := g.Board.Clone()

			plan, err := NewSearch(WithExpansionLimit(1)).Plan(g.Board, g.NowPlayer)
			require.NoError(t, err)
			require.NotEmpty(t, plan)
			requireUntouched(t, before, g.Board)
			requirePlanHonoursContract(t, g, plan)
		})
	}
}

func TestSearchOpening(t *testing.T) {
	b := chess.MustNewBoard(3, 3)

	plan, err := NewSearch(WithSeed(5)).Plan(b, chess.Player1)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, chess.KindFree, b.LineKind(plan[0]))
	assert.Equal(t, 24, b.UnselectedCount())
}

func TestCurate(t *testing.T) {
	b := chess.MustNewBoard(3, 2)
	for _, id := range b.Lines() {
		if id.Orientation() == chess.Horizontal {
			_, err := b.SelectLine(id, chess.Player1)
			require.NoError(t, err)
		}
	}

	assert.Len(t, curate(b, nil, b.UnselectedLines()), 8)

	curated := curate(b, tunnel.Find(b), b.UnselectedLines())
	assert.Equal(t, []string{"0,0v", "1,0v", "3,0v", "0,1v", "1,1v", "3,1v"}, lineStrings(curated))

	s := NewSearch()
	moves, err := s.Evaluate(b, chess.Player2)
	require.NoError(t, err)
	for _, m := range moves {
		assert.Len(t, m.Lines, 1)
		assert.Zero(t, m.Points)
	}
}
