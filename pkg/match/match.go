package match

import (
	"context"
	"fmt"
	"time"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/message"
	"github.com/zeromicro/go-zero/core/logx"
)

// Match drives two planners against each other on a fresh board.
type Match struct {
	logx.Logger
	message.GameUid
	Seed    int64
	Width   int
	Height  int
	players map[chess.Player]assess.Planner
}

type Option func(*Match)

func WithSeed(Seed int64) Option {
	return func(m *Match) {
		m.Seed = Seed
	}
}

func WithLogger(Logger logx.Logger) Option {
	return func(m *Match) {
		m.Logger = Logger
	}
}

func WithGameUid(GameUid message.GameUid) Option {
	return func(m *Match) {
		m.GameUid = GameUid
	}
}

func NewMatch(Width, Height int, p1, p2 assess.Planner, options ...Option) *Match {
	m := &Match{
		Logger:  logx.WithContext(context.Background()),
		GameUid: message.NewGameUid(),
		Width:   Width,
		Height:  Height,
		players: map[chess.Player]assess.Planner{
			chess.Player1: p1,
			chess.Player2: p2,
		},
	}

	for _, option := range options {
		option(m)
	}
	return m
}

// Play runs the match to the end. Any planner error, illegal line, empty plan
// or broken turn contract stops the match with a *FailureError.
func (m *Match) Play() (*message.MatchReport, error) {
	report := &message.MatchReport{
		TimeStamp: message.NewTimeStamp(time.Now()),
		GameUid:   m.GameUid,
		Seed:      m.Seed,
		Player1:   m.players[chess.Player1].Name(),
		Player2:   m.players[chess.Player2].Name(),
		Width:     m.Width,
		Height:    m.Height,
	}

	g, err := chess.NewGame(m.Width, m.Height)
	if err != nil {
		return nil, err
	}

	for turn := 1; !g.Over(); turn++ {
		if err = m.turn(g, turn); err != nil {
			report.Record(g)
			report.Failure = err.Error()
			m.Errorf("game %s failed on turn %d: %v", m.GameUid.Short(), turn, err)
			return report, &FailureError{Report: report, Err: err}
		}
	}

	report.Record(g)
	m.Infof("game %s %s vs %s on %dx%d: %d-%d",
		m.GameUid.Short(), report.Player1, report.Player2, m.Width, m.Height, report.Scores.Player1, report.Scores.Player2)
	return report, nil
}

func (m *Match) turn(g *chess.Game, turn int) error {
	player := g.NowPlayer
	planner := m.players[player]

	remaining := g.UnselectedCount()
	plan, err := planner.Plan(g.Board, player)
	if err != nil {
		return fmt.Errorf("%s planner %s: %w", player, planner.Name(), err)
	}
	if g.UnselectedCount() != remaining {
		return fmt.Errorf("%s planner %s: %w", player, planner.Name(), ErrBoardChanged)
	}

	state, err := g.ApplyPlan(plan)
	if err != nil {
		return err
	}

	m.Debugf("game %s turn %d: %s plays [%s] (%s)", m.GameUid.Short(), turn, player, assess.Plan(plan), state)
	return nil
}

// Run plays one match between two registered planners, both seeded with seed.
func Run(p1Name, p2Name string, Width, Height int, seed int64, options ...Option) (*message.MatchReport, error) {
	p1, err := assess.New(p1Name, assess.WithSeed(seed))
	if err != nil {
		return nil, err
	}

	p2, err := assess.New(p2Name, assess.WithSeed(seed))
	if err != nil {
		return nil, err
	}

	return NewMatch(Width, Height, p1, p2, append([]Option{WithSeed(seed)}, options...)...).Play()
}
