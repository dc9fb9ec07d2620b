package clock

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Clock supplies "today" and "now" in the server-local convention the rest of
// the system works with: dates as YYYY-MM-DD and times of day as HH:MM:SS.
type Clock interface {
	Now() time.Time
	Today() string
	NowTime() string
}

type systemClock struct{}

func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Today() string {
	return time.Now().Format(DateLayout)
}

func (systemClock) NowTime() string {
	return time.Now().Format(TimeLayout)
}

// Fixed is a Clock pinned to a single instant, for tests and replays.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

func (f Fixed) Today() string {
	return f.Instant.Format(DateLayout)
}

func (f Fixed) NowTime() string {
	return f.Instant.Format(TimeLayout)
}
