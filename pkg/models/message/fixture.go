package message

import (
	"os"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// Fixture is a recorded position: board dimensions plus the ordered moves
// that led to it.
type Fixture struct {
	Name     string   `json:"name,omitempty"`
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	Moves    []string `json:"moves"`
	Expected []string `json:"expected,omitempty"`
}

func NewFixtures(data []byte) (fixtures []Fixture, err error) {
	err = sonic.Unmarshal(data, &fixtures)
	return
}

func LoadFixtures(path string) ([]Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFixtures(data)
}

func (f Fixture) Replay() (*chess.Game, error) {
	return chess.Replay(f.Cols, f.Rows, f.Moves...)
}

func (f Fixture) String() string {
	str, _ := sonic.MarshalString(f)
	return str
}
