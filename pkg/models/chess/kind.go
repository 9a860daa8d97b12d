package chess

import "fmt"

type Kind int8

const (
	KindFree Kind = iota
	KindUnsafe
	KindGoal
	KindClaimed
	KindSelected
)

func (k Kind) String() string {
	switch k {
	case KindFree:
		return "free"
	case KindUnsafe:
		return "unsafe"
	case KindGoal:
		return "goal"
	case KindClaimed:
		return "claimed"
	case KindSelected:
		return "selected"
	}
	return ""
}

// CellKind classifies a box by its selected lines: 0-1 free, 2 unsafe,
// 3 goal, 4 claimed. It panics with *CorruptBoardError when the claim
// disagrees with the line count.
func (b *Board) CellKind(box Box) Kind {
	c := b.cell(box)
	n := b.SelectedCount(box)
	if (n == 4) != c.Claimed() {
		panic(&CorruptBoardError{Box: box, Lines: c.Lines, SelectedLines: n, Claim: c.Claim})
	}

	switch n {
	case 0, 1:
		return KindFree
	case 2:
		return KindUnsafe
	case 3:
		return KindGoal
	}
	return KindClaimed
}

// LineKind classifies an unselected line by its adjacent boxes. Selected
// lines report KindSelected.
func (b *Board) LineKind(id LineID) Kind {
	l, c := b.lines[id]
	if !c {
		panic(fmt.Errorf("%w: %s", ErrUnknownLine, id))
	}
	if l.Selected {
		return KindSelected
	}

	kind := KindFree
	for _, box := range l.Boxes {
		switch b.CellKind(box) {
		case KindGoal:
			return KindGoal
		case KindUnsafe:
			kind = KindUnsafe
		}
	}
	return kind
}

// Claimable returns how many boxes selecting id would claim right now.
func (b *Board) Claimable(id LineID) (count int) {
	l, c := b.lines[id]
	if !c || l.Selected {
		return 0
	}

	for _, box := range l.Boxes {
		if b.CellKind(box) == KindGoal {
			count++
		}
	}
	return
}

func (b *Board) FreeLines() (lines []LineID) {
	for _, id := range b.order {
		if b.LineKind(id) == KindFree {
			lines = append(lines, id)
		}
	}
	return
}
