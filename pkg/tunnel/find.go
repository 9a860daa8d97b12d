package tunnel

import (
	"sort"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
)

// Find returns every chain on the board. Each unselected line touching an
// unsafe or goal box lands in exactly one chain; chains are ordered by Key.
func Find(b *chess.Board) (chains Chains) {
	assigned := make(map[chess.LineID]struct{})
	for _, id := range b.UnselectedLines() {
		if _, c := assigned[id]; c {
			continue
		}
		if kind := b.LineKind(id); kind != chess.KindUnsafe && kind != chess.KindGoal {
			continue
		}

		chain := follow(b, id)
		for _, l := range chain.Lines {
			assigned[l] = struct{}{}
		}
		chains = append(chains, chain)
	}

	sort.Slice(chains, func(i, j int) bool { return chains[i].Key().Less(chains[j].Key()) })
	return
}

func follow(b *chess.Board, id chess.LineID) Chain {
	l, _ := b.Line(id)

	var forward, backward []chess.LineID
	if len(l.Boxes) > 0 {
		var loop bool
		if forward, loop = walk(b, id, l.Boxes[0]); loop {
			return Chain{Lines: append([]chess.LineID{id}, forward...), Loop: true}
		}
	}
	if len(l.Boxes) > 1 {
		backward, _ = walk(b, id, l.Boxes[1])
	}

	lines := make([]chess.LineID, 0, len(backward)+1+len(forward))
	for i := len(backward) - 1; i >= 0; i-- {
		lines = append(lines, backward[i])
	}
	lines = append(lines, id)
	lines = append(lines, forward...)

	chain := Chain{
		Lines:       lines,
		StartClosed: b.LineKind(lines[0]) == chess.KindGoal,
		EndClosed:   b.LineKind(lines[len(lines)-1]) == chess.KindGoal,
	}
	if !chain.StartClosed && chain.EndClosed {
		chain = chain.reversed()
	}
	return chain
}

// walk crosses unsafe boxes starting at box, entering through start, and
// returns the lines it passes. loop is set when it comes back to start.
func walk(b *chess.Board, start chess.LineID, box chess.Box) (lines []chess.LineID, loop bool) {
	prev := start
	for b.CellKind(box) == chess.KindUnsafe {
		next := otherUnselected(b, box, prev)
		if next == start {
			return lines, true
		}
		lines = append(lines, next)

		nextBox, c := across(b, next, box)
		if !c {
			return lines, false
		}
		prev, box = next, nextBox
	}
	return lines, false
}

func otherUnselected(b *chess.Board, box chess.Box, from chess.LineID) chess.LineID {
	c, _ := b.Cell(box)
	for _, id := range c.Lines {
		if id != from && !b.Selected(id) {
			return id
		}
	}
	panic(&chess.CorruptBoardError{Box: box, Lines: c.Lines, SelectedLines: b.SelectedCount(box), Claim: c.Claim})
}

func across(b *chess.Board, id chess.LineID, from chess.Box) (chess.Box, bool) {
	l, _ := b.Line(id)
	for _, box := range l.Boxes {
		if box != from {
			return box, true
		}
	}
	return 0, false
}
