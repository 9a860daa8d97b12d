package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/match"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
)

type Tally struct {
	Games    int
	Player1  int
	Player2  int
	Draws    int
	Failures int
}

func (t Tally) String() string {
	return fmt.Sprintf("%d games: player1 %d, player2 %d, draws %d, failures %d",
		t.Games, t.Player1, t.Player2, t.Draws, t.Failures)
}

func (t *Tally) Add(r *message.MatchReport) {
	t.Games++
	switch {
	case r.Failure != "":
		t.Failures++
	case r.Scores.Tie():
		t.Draws++
	case r.Scores.Winner == chess.Player1:
		t.Player1++
	case r.Scores.Winner == chess.Player2:
		t.Player2++
	}
}

// Fuzz plays c.Games matches with seeds c.Seed, c.Seed+1, ... on c.Workers
// goroutines and prints every failed match to out.
func Fuzz(c Config, out io.Writer, bar *model.Bar) (tally Tally, err error) {
	reports := pusher.NewPusher(
		pusher.WithPushInterval[*message.MatchReport](c.ReportInterval),
		pusher.WithPushLogic(func(reports ...*message.MatchReport) error {
			for _, r := range reports {
				tally.Add(r)
				if r.Failure != "" {
					fmt.Fprintln(out, r)
				}
			}
			if bar != nil {
				bar.Describe(tally.String(), tally.Failures > 0)
				bar.Goto(tally.Games)
			}
			return nil
		}),
	)
	reports.Start()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seeds := make(chan int64)
	go func() {
		defer close(seeds)
		for i := range c.Games {
			select {
			case seeds <- c.Seed + int64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		wg      sync.WaitGroup
		errOnce sync.Once
	)
	for range c.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range seeds {
				r, e := match.Run(c.Player1, c.Player2, c.Width, c.Height, seed)
				var failure *match.FailureError
				switch {
				case e == nil:
				case errors.As(e, &failure):
					logx.Errorf("seed %d: %v", seed, e)
				default:
					errOnce.Do(func() { err = fmt.Errorf("seed %d: %w", seed, e) })
					cancel()
					continue
				}
				reports.AddMessages(r)
			}
		}()
	}

	wg.Wait()
	reports.Stop()
	return tally, err
}
