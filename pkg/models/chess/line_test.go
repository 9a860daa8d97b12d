package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineID(t *testing.T) {
	tests := []struct {
		text string
		x, y int
		o    Orientation
	}{
		{"0,0h", 0, 0, Horizontal},
		{"3,2v", 3, 2, Vertical},
		{"12,7h", 12, 7, Horizontal},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			l, err := ParseLineID(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.x, l.X())
			assert.Equal(t, tt.y, l.Y())
			assert.Equal(t, tt.o, l.Orientation())
			assert.Equal(t, tt.text, l.String())
		})
	}
}

func TestParseLineIDMalformed(t *testing.T) {
	for _, text := range []string{"", "3v", "3,2x", "a,2h", "1,b,v", "-1,0h", "1,2,3h", "300,0h"} {
		_, err := ParseLineID(text)
		assert.ErrorIs(t, err, ErrMalformedLine, text)
	}
}

func TestLineIDOrder(t *testing.T) {
	assert.Less(t, MustParseLineID("9,9h"), MustParseLineID("0,0v"))
	assert.Less(t, MustParseLineID("9,0h"), MustParseLineID("0,1h"))
	assert.Less(t, MustParseLineID("1,4v"), MustParseLineID("2,4v"))
}

func TestLineBoxes(t *testing.T) {
	b := MustNewBoard(2, 2)

	tests := []struct {
		line  string
		boxes []Box
	}{
		{"0,0h", []Box{NewBox(0, 0)}},
		{"1,1h", []Box{NewBox(1, 1), NewBox(1, 0)}},
		{"1,2h", []Box{NewBox(1, 1)}},
		{"0,0v", []Box{NewBox(0, 0)}},
		{"1,1v", []Box{NewBox(1, 1), NewBox(0, 1)}},
		{"2,1v", []Box{NewBox(1, 1)}},
	}

	for _, tt := range tests {
		l, c := b.Line(MustParseLineID(tt.line))
		require.True(t, c, tt.line)
		assert.Equal(t, tt.boxes, l.Boxes, tt.line)
		assert.Equal(t, len(tt.boxes) == 1, l.OnBorder(), tt.line)
	}
}

func TestBoxLines(t *testing.T) {
	lines := NewBox(1, 2).Lines()
	assert.Equal(t, "1,2h", lines[0].String())
	assert.Equal(t, "1,3h", lines[1].String())
	assert.Equal(t, "2,2v", lines[2].String())
	assert.Equal(t, "1,2v", lines[3].String())
}
