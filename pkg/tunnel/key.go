package tunnel

import (
	"fmt"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
)

// Key identifies a chain by its end lines, lower id first, so the same chain
// gets the same key whichever way it was walked.
type Key struct {
	From chess.LineID
	To   chess.LineID
}

func NewKey(a, b chess.LineID) Key {
	if a > b {
		a, b = b, a
	}
	return Key{From: a, To: b}
}

func (k Key) Less(o Key) bool {
	if k.From != o.From {
		return k.From < o.From
	}
	return k.To < o.To
}

func (k Key) String() string {
	return fmt.Sprintf("%s>%s", k.From, k.To)
}

type Position int8

const (
	// PositionFree marks a line outside every chain.
	PositionFree Position = iota
	PositionWhole
	PositionStart
	PositionMid
	PositionEnd
)

func (p Position) String() string {
	switch p {
	case PositionWhole:
		return "whole"
	case PositionStart:
		return "start"
	case PositionMid:
		return "mid"
	case PositionEnd:
		return "end"
	}
	return "free"
}

// SelectionKey collapses moves that are equivalent for enumeration: a chain
// line is keyed by its chain and whether it is an end or interior line.
type SelectionKey struct {
	Line     chess.LineID
	Chain    Key
	Position Position
}

func (k SelectionKey) String() string {
	switch k.Position {
	case PositionFree:
		return k.Line.String()
	case PositionWhole:
		return k.Chain.String()
	}
	return fmt.Sprintf("%s-%s", k.Chain, k.Position)
}

func (cs Chains) SelectionKey(b *chess.Board, id chess.LineID) SelectionKey {
	chain, i, c := cs.Locate(id)
	if !c {
		return SelectionKey{Line: id}
	}

	key := SelectionKey{Chain: chain.Key()}
	if chain.Len() == 1 {
		key.Position = PositionWhole
		return key
	}

	l, _ := b.Line(id)
	outer := l.OnBorder() || b.LineKind(id) != chess.KindUnsafe
	switch {
	case i == 0 && outer:
		key.Position = PositionStart
	case i == chain.Len()-1 && outer:
		key.Position = PositionEnd
	default:
		key.Position = PositionMid
	}
	return key
}
