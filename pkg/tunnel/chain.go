package tunnel

import (
	"strings"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
)

// Chain is a maximal run of unsafe boxes joined by their shared unselected
// lines, end lines included. A chain with a single closed end starts there.
type Chain struct {
	Lines       []chess.LineID
	StartClosed bool
	EndClosed   bool
	// Loop is set when the chain runs back into its first line.
	Loop bool
}

func (c Chain) Len() int {
	return len(c.Lines)
}

// Goal reports whether the chain can be captured right now.
func (c Chain) Goal() bool {
	return c.StartClosed || c.EndClosed
}

func (c Chain) FullyClosed() bool {
	return c.StartClosed && c.EndClosed
}

func (c Chain) First() chess.LineID {
	return c.Lines[0]
}

func (c Chain) Last() chess.LineID {
	return c.Lines[len(c.Lines)-1]
}

func (c Chain) Index(id chess.LineID) int {
	for i, l := range c.Lines {
		if l == id {
			return i
		}
	}
	return -1
}

func (c Chain) Key() Key {
	return NewKey(c.First(), c.Last())
}

// SemiSelectable reports whether the chain can be taken all-but-two while
// still ending the turn.
func (c Chain) SemiSelectable() bool {
	return c.Goal() && (c.Len() >= 3 || (!c.FullyClosed() && c.Len() == 2))
}

// SemiSelection walks the chain from its closed start and stops two lines
// before the end, three when both ends are closed. With gap set it appends
// the line after the stop, which claims nothing and leaves the last boxes to
// the opponent.
func (c Chain) SemiSelection(gap bool) (lines []chess.LineID) {
	stop := 2
	if c.FullyClosed() {
		stop = 3
	}

	for i := range c.Len() {
		if i+stop >= c.Len() {
			if gap {
				lines = append(lines, c.Lines[i+1])
			}
			return
		}
		lines = append(lines, c.Lines[i])
	}
	return
}

func (c Chain) reversed() Chain {
	lines := make([]chess.LineID, len(c.Lines))
	for i, l := range c.Lines {
		lines[len(lines)-1-i] = l
	}
	return Chain{Lines: lines, StartClosed: c.EndClosed, EndClosed: c.StartClosed, Loop: c.Loop}
}

func (c Chain) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	for i, l := range c.Lines {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(l.String())
	}
	builder.WriteByte(']')
	switch {
	case c.Loop:
		builder.WriteString(" loop")
	case c.FullyClosed():
		builder.WriteString(" closed")
	case c.Goal():
		builder.WriteString(" half-closed")
	default:
		builder.WriteString(" open")
	}
	return builder.String()
}

type Chains []Chain

// Locate returns the chain holding id and the position of id inside it.
func (cs Chains) Locate(id chess.LineID) (Chain, int, bool) {
	for _, c := range cs {
		if i := c.Index(id); i >= 0 {
			return c, i, true
		}
	}
	return Chain{}, -1, false
}

func (cs Chains) Goal() (goal Chains) {
	for _, c := range cs {
		if c.Goal() {
			goal = append(goal, c)
		}
	}
	return
}

func (cs Chains) Open() (open Chains) {
	for _, c := range cs {
		if !c.Goal() {
			open = append(open, c)
		}
	}
	return
}

// SemiSelectable returns the index of the first chain that can be taken
// all-but-two, or -1.
func (cs Chains) SemiSelectable() int {
	for i, c := range cs {
		if c.SemiSelectable() {
			return i
		}
	}
	return -1
}

func (cs Chains) Lines() (lines []chess.LineID) {
	for _, c := range cs {
		lines = append(lines, c.Lines...)
	}
	return
}
