package chess

import (
	"fmt"
	"sort"
)

type Board struct {
	Width  int
	Height int

	lines map[LineID]*Line
	order []LineID
	cells []Cell
}

// NewBoard builds a Width x Height grid of boxes with every line unselected.
func NewBoard(Width, Height int) (*Board, error) {
	if Width < 1 || Height < 1 || Width > MaxBoardSize || Height > MaxBoardSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, Width, Height)
	}

	b := &Board{
		Width:  Width,
		Height: Height,
		lines:  make(map[LineID]*Line, Width*(Height+1)+(Width+1)*Height),
		cells:  make([]Cell, 0, Width*Height),
	}

	for y := range Height + 1 {
		for x := range Width {
			b.addLine(NewLineID(x, y, Horizontal))
		}
	}
	for y := range Height {
		for x := range Width + 1 {
			b.addLine(NewLineID(x, y, Vertical))
		}
	}
	sort.Slice(b.order, func(i, j int) bool { return b.order[i] < b.order[j] })

	for y := range Height {
		for x := range Width {
			box := NewBox(x, y)
			b.cells = append(b.cells, Cell{Box: box, Lines: box.Lines()})
		}
	}

	return b, nil
}

func MustNewBoard(Width, Height int) *Board {
	b, err := NewBoard(Width, Height)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) addLine(id LineID) {
	b.lines[id] = &Line{ID: id, Boxes: lineBoxes(id, b.Width, b.Height)}
	b.order = append(b.order, id)
}

func (b *Board) cell(box Box) *Cell {
	return &b.cells[box.Y()*b.Width+box.X()]
}

func (b *Board) Contains(box Box) bool {
	return box.X() >= 0 && box.X() < b.Width && box.Y() >= 0 && box.Y() < b.Height
}

func (b *Board) Cell(box Box) (Cell, bool) {
	if !b.Contains(box) {
		return Cell{}, false
	}
	return *b.cell(box), true
}

func (b *Board) Line(id LineID) (Line, bool) {
	l, c := b.lines[id]
	if !c {
		return Line{}, false
	}
	return *l, true
}

func (b *Board) Selected(id LineID) bool {
	l, c := b.lines[id]
	return c && l.Selected
}

// Lines returns every line id in enumeration order.
func (b *Board) Lines() []LineID {
	return append([]LineID(nil), b.order...)
}

func (b *Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

func (b *Board) UnselectedLines() (lines []LineID) {
	for _, id := range b.order {
		if !b.lines[id].Selected {
			lines = append(lines, id)
		}
	}
	return
}

func (b *Board) UnselectedCount() (count int) {
	for _, l := range b.lines {
		if !l.Selected {
			count++
		}
	}
	return
}

// SelectedCount returns how many of the box's four lines are selected.
func (b *Board) SelectedCount(box Box) (count int) {
	for _, id := range b.cell(box).Lines {
		if b.lines[id].Selected {
			count++
		}
	}
	return
}

// SelectLine marks id as selected and claims for p every adjacent box that
// now has all four lines selected.
func (b *Board) SelectLine(id LineID, p Player) (claimed []Box, err error) {
	if p != Player1 && p != Player2 {
		return nil, fmt.Errorf("%w: %d", ErrNoPlayer, p)
	}

	l, c := b.lines[id]
	if !c {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLine, id)
	}
	if l.Selected {
		return nil, fmt.Errorf("%w: %s", ErrLineSelected, id)
	}

	l.Selected = true
	for _, box := range l.Boxes {
		if b.SelectedCount(box) == 4 {
			b.cell(box).Claim = p
			claimed = append(claimed, box)
		}
	}
	return
}

// UnselectLine reverses SelectLine, clearing the claims of adjacent boxes.
func (b *Board) UnselectLine(id LineID) error {
	l, c := b.lines[id]
	if !c {
		return fmt.Errorf("%w: %s", ErrUnknownLine, id)
	}
	if !l.Selected {
		return fmt.Errorf("%w: %s", ErrLineNotSelected, id)
	}

	l.Selected = false
	for _, box := range l.Boxes {
		b.cell(box).Claim = None
	}
	return nil
}

type Scores struct {
	Player1 int
	Player2 int
	Over    bool
	// Winner is None while the game runs and on a tie.
	Winner Player
}

func (s Scores) Tie() bool {
	return s.Over && s.Winner == None
}

// Of returns the score of p and of its opponent.
func (s Scores) Of(p Player) (own, opponent int) {
	if p == Player2 {
		return s.Player2, s.Player1
	}
	return s.Player1, s.Player2
}

func (b *Board) Scores() (s Scores) {
	for _, c := range b.cells {
		switch c.Claim {
		case Player1:
			s.Player1++
		case Player2:
			s.Player2++
		}
	}

	s.Over = s.Player1+s.Player2 == len(b.cells)
	if s.Over {
		if s.Player1 > s.Player2 {
			s.Winner = Player1
		} else if s.Player2 > s.Player1 {
			s.Winner = Player2
		}
	}
	return
}

// RemainingScore returns the number of unclaimed boxes.
func (b *Board) RemainingScore() (remainingScore int) {
	for _, c := range b.cells {
		if !c.Claimed() {
			remainingScore++
		}
	}
	return
}

func (b *Board) Clone() *Board {
	newBoard := &Board{
		Width:  b.Width,
		Height: b.Height,
		lines:  make(map[LineID]*Line, len(b.lines)),
		order:  b.order,
		cells:  make([]Cell, len(b.cells)),
	}

	for id, l := range b.lines {
		newLine := *l
		newBoard.lines[id] = &newLine
	}
	copy(newBoard.cells, b.cells)

	return newBoard
}

// Validate checks that every box is claimed iff its four lines are selected.
func (b *Board) Validate() error {
	for _, c := range b.cells {
		if n := b.SelectedCount(c.Box); (n == 4) != c.Claimed() {
			return &CorruptBoardError{Box: c.Box, Lines: c.Lines, SelectedLines: n, Claim: c.Claim}
		}
	}
	return nil
}
