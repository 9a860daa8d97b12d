package assess

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	RandomName = "rng"
	QuickName  = "quick"
	SearchName = "search"

	DefaultExpansionLimit = 50
)

// Plan is every line a planner commits to before its turn ends.
type Plan []chess.LineID

func (p Plan) String() string {
	var builder strings.Builder
	for i, l := range p {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(l.String())
	}
	return builder.String()
}

type Planner interface {
	Name() string
	// Plan never mutates b once it returns.
	Plan(b *chess.Board, self chess.Player) (Plan, error)
}

type Config struct {
	Seed           int64
	Logger         logx.Logger
	ExpansionLimit int
}

type Option func(*Config)

func WithSeed(Seed int64) Option {
	return func(c *Config) {
		c.Seed = Seed
	}
}

func WithLogger(Logger logx.Logger) Option {
	return func(c *Config) {
		c.Logger = Logger
	}
}

func WithExpansionLimit(ExpansionLimit int) Option {
	return func(c *Config) {
		c.ExpansionLimit = ExpansionLimit
	}
}

func newConfig(seed int64, options ...Option) (c Config) {
	c = Config{
		Seed:           seed,
		Logger:         logx.WithContext(context.Background()),
		ExpansionLimit: DefaultExpansionLimit,
	}

	for _, option := range options {
		option(&c)
	}

	if c.ExpansionLimit < 1 {
		c.ExpansionLimit = 1
	}
	return
}

var factories = map[string]func(...Option) Planner{
	RandomName: func(options ...Option) Planner { return NewRandom(options...) },
	QuickName:  func(options ...Option) Planner { return NewQuick(options...) },
	SearchName: func(options ...Option) Planner { return NewSearch(options...) },
}

// New builds the planner registered under name.
func New(name string, options ...Option) (Planner, error) {
	factory, c := factories[name]
	if !c {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownPlanner, name, strings.Join(Names(), ", "))
	}
	return factory(options...), nil
}

func Names() (names []string) {
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

func check(b *chess.Board, self chess.Player) error {
	if self != chess.Player1 && self != chess.Player2 {
		return fmt.Errorf("%w: %d", chess.ErrNoPlayer, self)
	}
	return b.Validate()
}
