package message

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GameUid names one match so its report can be matched with its log lines.
type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func ParseGameUid(s string) (GameUid, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("game uid %q: %w", s, err)
	}
	return GameUid(u.String()), nil
}

// Short is the first block of the uid, enough to tell games apart in logs.
func (g GameUid) Short() string {
	if len(g) < 8 {
		return string(g)
	}
	return string(g[:8])
}

const TimeFormatString = time.DateTime

type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Format(TimeFormatString))
}

func (ts TimeStamp) Time() (time.Time, error) {
	return time.ParseInLocation(TimeFormatString, string(ts), time.Local)
}
