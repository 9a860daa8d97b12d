package chess

import "fmt"

type Player int8

const (
	None    Player = 0
	Player1 Player = 1
	Player2 Player = -1
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "None"
}

func (p Player) Opponent() Player {
	return -p
}

// State is the turn lifecycle seen by a driver replaying a plan.
type State int8

const (
	AwaitingPlan State = iota
	Replaying
	TurnEndedNaturally
	PlanExhausted
)

func (s State) String() string {
	switch s {
	case AwaitingPlan:
		return "AwaitingPlan"
	case Replaying:
		return "Replaying"
	case TurnEndedNaturally:
		return "TurnEndedNaturally"
	case PlanExhausted:
		return "PlanExhausted"
	}
	return ""
}

type Game struct {
	*Board
	NowPlayer Player
	History   []LineID
	State     State
}

func NewGame(Width, Height int) (*Game, error) {
	b, err := NewBoard(Width, Height)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:     b,
		NowPlayer: Player1,
	}, nil
}

// Add plays id for the player to move; the turn passes when nothing is claimed.
func (g *Game) Add(id LineID) (claimed []Box, err error) {
	if claimed, err = g.Board.SelectLine(id, g.NowPlayer); err != nil {
		return nil, err
	}

	g.History = append(g.History, id)
	if len(claimed) == 0 {
		g.NowPlayer = g.NowPlayer.Opponent()
	}
	return
}

func (g *Game) Over() bool {
	return g.Board.UnselectedCount() == 0
}

func (g *Game) StepCount() int {
	return len(g.History)
}

// ApplyPlan replays a plan for the player to move. It fails with a
// *ContractViolationError when the turn passes before the plan is used up.
func (g *Game) ApplyPlan(plan []LineID) (State, error) {
	if len(plan) == 0 {
		if g.Over() {
			return AwaitingPlan, nil
		}
		return AwaitingPlan, fmt.Errorf("%s: %w", g.NowPlayer, ErrEmptyPlan)
	}

	player := g.NowPlayer
	g.State = Replaying
	for i, id := range plan {
		if g.NowPlayer != player {
			return g.State, &ContractViolationError{
				Player:  player,
				Plan:    append([]LineID(nil), plan...),
				Index:   i,
				History: append([]LineID(nil), g.History...),
			}
		}

		if _, err := g.Add(id); err != nil {
			return g.State, fmt.Errorf("plan line %d: %w", i, err)
		}
	}

	if g.NowPlayer != player {
		g.State = TurnEndedNaturally
	} else {
		g.State = PlanExhausted
	}
	return g.State, nil
}

// Replay rebuilds a game from recorded moves in text form.
func Replay(Width, Height int, moves ...string) (*Game, error) {
	g, err := NewGame(Width, Height)
	if err != nil {
		return nil, err
	}

	lines, err := ParseLineIDs(moves...)
	if err != nil {
		return nil, err
	}

	for i, l := range lines {
		if _, err = g.Add(l); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
	}
	return g, nil
}
