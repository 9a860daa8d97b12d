package assess

import (
	"math/rand"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
	"github.com/zeromicro/go-zero/core/logx"
)

const DefaultRandomSeed = 4398798765

// Random plays one unselected line picked by a seeded generator.
type Random struct {
	logx.Logger
	rng *rand.Rand
}

func NewRandom(options ...Option) *Random {
	c := newConfig(DefaultRandomSeed, options...)
	return &Random{
		Logger: c.Logger,
		rng:    rand.New(rand.NewSource(c.Seed)),
	}
}

func (r *Random) Name() string {
	return RandomName
}

func (r *Random) Plan(b *chess.Board, self chess.Player) (Plan, error) {
	if err := check(b, self); err != nil {
		return nil, err
	}

	lines := b.UnselectedLines()
	if len(lines) == 0 {
		return Plan{}, nil
	}

	line := lines[r.rng.Intn(len(lines))]
	r.Debugf("%s %s plays %s out of %d lines", r.Name(), self, line, len(lines))
	return Plan{line}, nil
}
