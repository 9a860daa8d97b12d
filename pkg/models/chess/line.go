package chess

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	D       = 8
	dotMod  = 1 << D
	dotMask = dotMod - 1

	// MaxBoardSize keeps every coordinate, including the far boundary line, inside D bits.
	MaxBoardSize = dotMask - 1
)

type Orientation int8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	}
	return "?"
}

// LineID packs (orientation, y, x) so that numeric order is horizontal lines
// first, then row, then column.
type LineID int

func NewLineID(x, y int, o Orientation) LineID {
	return LineID(int(o)<<(D<<1) + y<<D + x)
}

func (l LineID) X() int {
	return int(l) & dotMask
}

func (l LineID) Y() int {
	return int(l) >> D & dotMask
}

func (l LineID) Orientation() Orientation {
	return Orientation(int(l) >> (D << 1))
}

func (l LineID) String() string {
	return fmt.Sprintf("%d,%d%s", l.X(), l.Y(), l.Orientation())
}

// ParseLineID reads the "<x>,<y><h|v>" form used by recorded games.
func ParseLineID(s string) (LineID, error) {
	if len(s) < 4 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLine, s)
	}

	var o Orientation
	switch s[len(s)-1] {
	case 'h':
		o = Horizontal
	case 'v':
		o = Vertical
	default:
		return 0, fmt.Errorf("%w: %q", ErrMalformedLine, s)
	}

	xs, ys, ok := strings.Cut(s[:len(s)-1], ",")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLine, s)
	}

	x, err := strconv.Atoi(xs)
	if err != nil || x < 0 || x > MaxBoardSize {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLine, s)
	}

	y, err := strconv.Atoi(ys)
	if err != nil || y < 0 || y > MaxBoardSize {
		return 0, fmt.Errorf("%w: %q", ErrMalformedLine, s)
	}

	return NewLineID(x, y, o), nil
}

func MustParseLineID(s string) LineID {
	l, err := ParseLineID(s)
	if err != nil {
		panic(err)
	}
	return l
}

func ParseLineIDs(moves ...string) (lines []LineID, err error) {
	for _, m := range moves {
		l, err := ParseLineID(m)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return
}

// Line is a snapshot of one edge of the board.
type Line struct {
	ID       LineID
	Selected bool
	Boxes    []Box
}

// OnBorder reports whether the line has a single adjacent box.
func (l Line) OnBorder() bool {
	return len(l.Boxes) == 1
}

func lineBoxes(id LineID, width, height int) (boxes []Box) {
	x, y := id.X(), id.Y()
	if id.Orientation() == Horizontal {
		if y < height {
			boxes = append(boxes, NewBox(x, y))
		}
		if y > 0 {
			boxes = append(boxes, NewBox(x, y-1))
		}
		return
	}

	if x < width {
		boxes = append(boxes, NewBox(x, y))
	}
	if x > 0 {
		boxes = append(boxes, NewBox(x-1, y))
	}
	return
}
