package chess

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSize     = errors.New("board size out of range")
	ErrMalformedLine   = errors.New("malformed line id")
	ErrUnknownLine     = errors.New("unknown line")
	ErrLineSelected    = errors.New("line already selected")
	ErrLineNotSelected = errors.New("line not selected")
	ErrNoPlayer        = errors.New("not a player")
	ErrEmptyPlan       = errors.New("empty plan while lines remain")
)

// CorruptBoardError reports a box whose claim disagrees with its lines.
type CorruptBoardError struct {
	Box           Box
	Lines         [4]LineID
	SelectedLines int
	Claim         Player
}

func (e *CorruptBoardError) Error() string {
	return fmt.Sprintf("corrupt board: box %s has %d selected lines %v but claim %s", e.Box, e.SelectedLines, e.Lines, e.Claim)
}

// ContractViolationError is raised when a plan still has lines to play after
// its player's turn has passed.
type ContractViolationError struct {
	Player  Player
	Plan    []LineID
	Index   int
	History []LineID
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("%s wants to play %s at plan index %d but its turn is over; plan [%s]; history [%s]",
		e.Player, e.Plan[e.Index], e.Index, joinLines(e.Plan), joinLines(e.History))
}

func joinLines(lines []LineID) string {
	var builder strings.Builder
	for i, l := range lines {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(l.String())
	}
	return builder.String()
}
