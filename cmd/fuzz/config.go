package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
	"github.com/zeromicro/go-zero/core/logx"
)

var ErrUsage = errors.New("usage: fuzz [-f config] [<ai1> <ai2> <width> <height> [seed]]")

type Config struct {
	Log            logx.LogConf
	Player1        string        `json:",default=search"`
	Player2        string        `json:",default=quick"`
	Width          int           `json:",default=5"`
	Height         int           `json:",default=5"`
	Games          int           `json:",default=100"`
	Workers        int           `json:",default=4"`
	Seed           int64         `json:",default=1"`
	Pprof          string        `json:",default=OFF"`
	PprofAddr      string        `json:",default=localhost:6060"`
	ReportInterval time.Duration `json:",default=1s"`
}

// Override applies the positional <ai1> <ai2> <width> <height> [seed] form.
func (c *Config) Override(args []string) (err error) {
	if len(args) == 0 {
		return nil
	}
	if len(args) != 4 && len(args) != 5 {
		return ErrUsage
	}

	c.Player1, c.Player2 = args[0], args[1]
	if c.Width, err = strconv.Atoi(args[2]); err != nil {
		return fmt.Errorf("%w: width %q", ErrUsage, args[2])
	}
	if c.Height, err = strconv.Atoi(args[3]); err != nil {
		return fmt.Errorf("%w: height %q", ErrUsage, args[3])
	}
	if len(args) == 5 {
		if c.Seed, err = strconv.ParseInt(args[4], 10, 64); err != nil {
			return fmt.Errorf("%w: seed %q", ErrUsage, args[4])
		}
	}
	return nil
}

func (c *Config) Validate() error {
	for _, name := range []string{c.Player1, c.Player2} {
		if !slices.Contains(assess.Names(), name) {
			return fmt.Errorf("%w: %q", assess.ErrUnknownPlanner, name)
		}
	}

	if c.Width < 1 || c.Height < 1 || c.Width > chess.MaxBoardSize || c.Height > chess.MaxBoardSize {
		return fmt.Errorf("%w: %dx%d", chess.ErrInvalidSize, c.Width, c.Height)
	}
	if c.Games < 1 || c.Workers < 1 {
		return fmt.Errorf("need at least one game and one worker, have %d and %d", c.Games, c.Workers)
	}
	if c.ReportInterval <= 0 {
		c.ReportInterval = time.Second
	}
	return nil
}
