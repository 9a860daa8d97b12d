package assess

import (
	"math/rand"
	"sort"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/tunnel"
	"github.com/zeromicro/go-zero/core/logx"
)

const DefaultQuickSeed = 4398798765

// Quick plans a whole turn from the chain rule without looking ahead.
type Quick struct {
	logx.Logger
	rng *rand.Rand
}

func NewQuick(options ...Option) *Quick {
	c := newConfig(DefaultQuickSeed, options...)
	return &Quick{
		Logger: c.Logger,
		rng:    rand.New(rand.NewSource(c.Seed)),
	}
}

func (q *Quick) Name() string {
	return QuickName
}

func (q *Quick) Plan(b *chess.Board, self chess.Player) (Plan, error) {
	if err := check(b, self); err != nil {
		return nil, err
	}

	if b.UnselectedCount() == 0 {
		q.Debug("no lines to select")
		return Plan{}, nil
	}

	plan := q.plan(b, self)
	q.Debugf("%s %s plays [%s]", q.Name(), self, plan)
	return plan, nil
}

func (q *Quick) plan(b *chess.Board, self chess.Player) Plan {
	chains := tunnel.Find(b)
	goal, open := chains.Goal(), chains.Open()

	candidates := b.UnselectedLines()
	q.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	// A free line hands the opponent nothing, so take every goal chain and stop there.
	for _, id := range candidates {
		if b.LineKind(id) == chess.KindFree {
			return append(Plan(goal.Lines()), id)
		}
	}

	if len(goal) == 0 {
		shortest := ByLength(open)[0]
		q.Debugf("no free lines, opening %s in the middle", shortest)
		return Plan{shortest.Lines[shortest.Len()/2]}
	}

	i := goal.SemiSelectable()
	if i < 0 {
		q.Debug("no chain can be semi-selected")
		return Plan(goal.Lines())
	}

	chosen := goal[i]
	rest := make(tunnel.Chains, 0, len(goal)-1)
	rest = append(rest, goal[:i]...)
	rest = append(rest, goal[i+1:]...)

	plan := Plan(rest.Lines())
	if ShouldSemiSelect(b.Scores(), self, chosen, open) {
		q.Debugf("semi-selecting %s", chosen)
		return append(plan, chosen.SemiSelection(true)...)
	}
	return append(plan, chosen.Lines...)
}

// ByLength returns a copy of chains sorted shortest first.
func ByLength(chains tunnel.Chains) tunnel.Chains {
	sorted := append(tunnel.Chains(nil), chains...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Len() < sorted[j].Len() })
	return sorted
}

// OpenChainSwing is the net gain for handing an open chain over all-but-two
// once the opponent has opened it.
func OpenChainSwing(c tunnel.Chain) int {
	switch {
	case c.Len() < 3:
		return -2
	case c.Loop:
		return c.Len() - 8
	}
	return c.Len() - 4
}

// ProjectedSwing is the net gain of semi-selecting chosen and then every open
// chain in turn, shortest first, with the opponent taking the longest one
// whole at the end.
func ProjectedSwing(chosen tunnel.Chain, open tunnel.Chains) int {
	swing := chosen.Len() - 4
	sorted := ByLength(open)
	for _, c := range sorted[:len(sorted)-1] {
		swing += OpenChainSwing(c)
	}
	return swing + sorted[len(sorted)-1].Len() - 1
}

// ShouldSemiSelect reports whether giving up the end of chosen still leaves
// self strictly ahead once every open chain has been played out.
func ShouldSemiSelect(s chess.Scores, self chess.Player, chosen tunnel.Chain, open tunnel.Chains) bool {
	if len(open) == 0 {
		return false
	}

	own, opponent := s.Of(self)
	return own+ProjectedSwing(chosen, open) > opponent
}
