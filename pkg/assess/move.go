package assess

import (
	"sort"
	"strconv"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
)

// Move is a candidate turn and the boxes it claims.
type Move struct {
	Points int
	Lines  []chess.LineID
}

func (m Move) Contains(id chess.LineID) bool {
	for _, l := range m.Lines {
		if l == id {
			return true
		}
	}
	return false
}

// Key is the same for every ordering of the same lines.
func (m Move) Key() string {
	ids := make([]int, len(m.Lines))
	for i, l := range m.Lines {
		ids[i] = int(l)
	}
	sort.Ints(ids)

	var builder strings.Builder
	for i, id := range ids {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(strconv.Itoa(id))
	}
	return builder.String()
}

// apply selects lines for p and returns the boxes claimed on the way. undo
// restores the board and must run before the caller returns.
func apply(b *chess.Board, p chess.Player, lines []chess.LineID) (points int, undo func(), err error) {
	applied := 0
	undo = func() {
		for i := applied - 1; i >= 0; i-- {
			if err := b.UnselectLine(lines[i]); err != nil {
				panic(err)
			}
		}
		applied = 0
	}

	for _, id := range lines {
		claimed, err := b.SelectLine(id, p)
		if err != nil {
			undo()
			return 0, func() {}, err
		}
		points += len(claimed)
		applied++
	}
	return
}

// Evaluate returns how many boxes p claims by playing lines in order. The
// board is left untouched.
func Evaluate(b *chess.Board, p chess.Player, lines []chess.LineID) (int, error) {
	points, undo, err := apply(b, p, lines)
	if err != nil {
		return 0, err
	}
	defer undo()
	return points, nil
}
