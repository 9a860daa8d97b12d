package match

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/message"
)

var ErrBoardChanged = errors.New("board changed while planning")

// FailureError carries the report of a match that could not be finished,
// enough to replay it from its seed and history.
type FailureError struct {
	Report *message.MatchReport
	Err    error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("game %s (%s vs %s, %dx%d, seed %d) after %d moves: %v",
		e.Report.GameUid, e.Report.Player1, e.Report.Player2, e.Report.Width, e.Report.Height, e.Report.Seed, len(e.Report.History), e.Err)
}

func (e *FailureError) Unwrap() error {
	return e.Err
}
