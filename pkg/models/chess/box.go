package chess

import "fmt"

type Box int

func NewBox(x, y int) Box {
	return Box((x << D) + y)
}

func (b Box) X() int {
	return int(b) >> D
}

func (b Box) Y() int {
	return int(b) & dotMask
}

func (b Box) String() string {
	return fmt.Sprintf("(%d,%d)", b.X(), b.Y())
}

// Lines returns the north, south, east and west lines of the box.
func (b Box) Lines() [4]LineID {
	x := b.X()
	y := b.Y()

	return [...]LineID{
		NewLineID(x, y, Horizontal),
		NewLineID(x, y+1, Horizontal),
		NewLineID(x+1, y, Vertical),
		NewLineID(x, y, Vertical),
	}
}

// Cell is a snapshot of one box and its claim.
type Cell struct {
	Box
	Lines [4]LineID
	Claim Player
}

func (c Cell) Claimed() bool {
	return c.Claim != None
}
