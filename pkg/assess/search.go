package assess

import (
	"math/rand"
	"sort"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/tunnel"
	"github.com/zeromicro/go-zero/core/logx"
)

const DefaultSearchSeed = 387429827398

// Search enumerates candidate turns and scores each one against the best
// reply it predicts for the opponent.
type Search struct {
	logx.Logger
	rng            *rand.Rand
	expansionLimit int
	fallback       *Quick
}

func NewSearch(options ...Option) *Search {
	c := newConfig(DefaultSearchSeed, options...)
	return &Search{
		Logger:         c.Logger,
		rng:            rand.New(rand.NewSource(c.Seed)),
		expansionLimit: c.ExpansionLimit,
		fallback:       NewQuick(append(options, WithSeed(c.Seed))...),
	}
}

func (s *Search) Name() string {
	return SearchName
}

func (s *Search) Plan(b *chess.Board, self chess.Player) (Plan, error) {
	if err := check(b, self); err != nil {
		return nil, err
	}

	if b.UnselectedCount() == 0 {
		s.Debug("no lines to select")
		return Plan{}, nil
	}

	available := b.RemainingScore()
	own, opponent := b.Scores().Of(self)

	moves, err := s.Evaluate(b, self)
	if err != nil {
		return nil, err
	}

	var best *Move
	bestScore := 0
	for i, m := range moves {
		if len(m.Lines) == 0 {
			s.Errorf("candidate %d/%d is empty", i, len(moves))
			continue
		}

		if m.Points >= available || own+m.Points > opponent+available-m.Points {
			s.Debugf("%s %s takes [%s] for %d points without looking further", s.Name(), self, Plan(m.Lines), m.Points)
			return Plan(m.Lines), nil
		}

		score, over, err := s.predict(b, self, m)
		if err != nil {
			return nil, err
		}
		if over {
			return Plan(m.Lines), nil
		}

		if best == nil || score > bestScore {
			best = &moves[i]
			bestScore = score
		}
	}

	if best == nil {
		s.Errorf("%s found no candidate, asking %s", s.Name(), s.fallback.Name())
		return s.fallback.Plan(b, self)
	}

	s.Debugf("%s %s plays [%s] scoring %d over %d candidates", s.Name(), self, Plan(best.Lines), bestScore, len(moves))
	return Plan(best.Lines), nil
}

// predict plays m and returns its points minus the most the opponent is
// expected to claim in reply.
func (s *Search) predict(b *chess.Board, self chess.Player, m Move) (score int, over bool, err error) {
	_, undo, err := apply(b, self, m.Lines)
	if err != nil {
		return 0, false, err
	}
	defer undo()

	replies, err := s.Evaluate(b, self.Opponent())
	if err != nil {
		return 0, false, err
	}
	if len(replies) == 0 {
		return 0, true, nil
	}
	return m.Points - replies[0].Points, false, nil
}

// Evaluate lists the candidate turns of p, most points first. Every goal
// chain is taken in full except one that can be semi-selected; that one is
// played up to its last two lines and the rest is left to enumeration.
func (s *Search) Evaluate(b *chess.Board, p chess.Player) ([]Move, error) {
	candidates := b.UnselectedLines()
	if len(candidates) == 0 {
		return nil, nil
	}

	chains := tunnel.Find(b)
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	goal := chains.Goal()
	var semi []chess.LineID
	if i := goal.SemiSelectable(); i >= 0 {
		semi = goal[i].SemiSelection(false)
		rest := make(tunnel.Chains, 0, len(goal)-1)
		rest = append(rest, goal[:i]...)
		goal = append(rest, goal[i+1:]...)
	}

	prefix := Move{Lines: append(goal.Lines(), semi...)}
	points, undo, err := apply(b, p, prefix.Lines)
	if err != nil {
		return nil, err
	}
	defer undo()
	prefix.Points = points

	var remaining []chess.LineID
	for _, id := range candidates {
		if !prefix.Contains(id) {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == 0 {
		return []Move{prefix}, nil
	}

	e := &enumeration{
		Logger: s.Logger,
		board:  b,
		player: p,
		lines:  curate(b, chains, remaining),
		limit:  s.expansionLimit,
		seen:   make(map[string]struct{}),
	}

	moves := e.run()
	for i, m := range moves {
		lines := make([]chess.LineID, 0, len(prefix.Lines)+len(m.Lines))
		lines = append(lines, prefix.Lines...)
		moves[i] = Move{Points: prefix.Points + m.Points, Lines: append(lines, m.Lines...)}
	}
	return moves, nil
}

// curate keeps the first line of every selection key.
func curate(b *chess.Board, chains tunnel.Chains, lines []chess.LineID) (curated []chess.LineID) {
	keys := make(map[tunnel.SelectionKey]struct{})
	for _, id := range lines {
		key := chains.SelectionKey(b, id)
		if _, c := keys[key]; c {
			continue
		}
		keys[key] = struct{}{}
		curated = append(curated, id)
	}
	return
}

type enumeration struct {
	logx.Logger
	board    *chess.Board
	player   chess.Player
	lines    []chess.LineID
	limit    int
	seen     map[string]struct{}
	complete []Move
}

// run grows sequences breadth first. A sequence is complete once its last
// line claims nothing or it has used every line.
func (e *enumeration) run() []Move {
	var incomplete []Move
	for _, id := range e.lines {
		m := Move{Points: e.board.Claimable(id), Lines: []chess.LineID{id}}
		if m.Points <= 0 || len(e.lines) == 1 {
			e.finish(m)
		} else {
			incomplete = append(incomplete, m)
		}
	}

	for round := 0; len(incomplete) > 0; round++ {
		if round >= e.limit {
			e.Errorf("expansion limit %d hit, keeping %d partial sequences", e.limit, len(incomplete))
			for _, m := range incomplete {
				e.finish(m)
			}
			break
		}

		var next []Move
		pending := make(map[string]struct{})
		for _, m := range incomplete {
			for _, grown := range e.expand(m) {
				key := grown.Key()
				if _, c := pending[key]; c {
					continue
				}
				pending[key] = struct{}{}
				next = append(next, grown)
			}
		}
		incomplete = next
	}

	sort.SliceStable(e.complete, func(i, j int) bool { return e.complete[i].Points > e.complete[j].Points })
	return e.complete
}

func (e *enumeration) expand(m Move) (next []Move) {
	_, undo, err := apply(e.board, e.player, m.Lines)
	if err != nil {
		e.Errorf("replaying [%s]: %v", Plan(m.Lines), err)
		return nil
	}
	defer undo()

	for _, id := range e.lines {
		if m.Contains(id) {
			continue
		}

		lines := make([]chess.LineID, 0, len(m.Lines)+1)
		lines = append(lines, m.Lines...)
		claimable := e.board.Claimable(id)
		grown := Move{Points: m.Points + claimable, Lines: append(lines, id)}
		if _, c := e.seen[grown.Key()]; c {
			continue
		}

		if claimable <= 0 || len(grown.Lines) >= len(e.lines) {
			e.finish(grown)
		} else {
			next = append(next, grown)
		}
	}
	return
}

func (e *enumeration) finish(m Move) {
	key := m.Key()
	if _, c := e.seen[key]; c {
		return
	}
	e.seen[key] = struct{}{}
	e.complete = append(e.complete, m)
}
