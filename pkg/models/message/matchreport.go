package message

import (
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
	"github.com/bytedance/sonic"
)

type MatchReport struct {
	TimeStamp
	GameUid
	Seed    int64
	Player1 string
	Player2 string
	Width   int
	Height  int
	Scores  chess.Scores
	Winner  string
	History []string
	Failure string `json:",omitempty"`
}

func NewMatchReport(str string) (newMatchReport MatchReport, err error) {
	err = sonic.UnmarshalString(str, &newMatchReport)
	return
}

// Record copies the outcome of g into the report.
func (m *MatchReport) Record(g *chess.Game) {
	m.History = m.History[:0]
	for _, l := range g.History {
		m.History = append(m.History, l.String())
	}

	m.Scores = g.Scores()
	switch {
	case !m.Scores.Over:
		m.Winner = ""
	case m.Scores.Tie():
		m.Winner = "Draw"
	default:
		m.Winner = m.Scores.Winner.String()
	}
}

// Fixture turns the recorded history back into a replayable position.
func (m MatchReport) Fixture() Fixture {
	return Fixture{
		Name:  string(m.GameUid),
		Rows:  m.Height,
		Cols:  m.Width,
		Moves: m.History,
	}
}

func (m MatchReport) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
