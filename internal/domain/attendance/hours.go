package attendance

import (
	"fmt"
	"math"
	"time"
)

const (
	// HalfDayThresholdHours is the minimum worked time that still counts as a
	// half day; anything below it is recorded as absent even when the employee
	// checked in and out.
	HalfDayThresholdHours = 4.0
	// FullDayThresholdHours is the minimum worked time for a full present day.
	FullDayThresholdHours = 7.5

	timeOfDayLayout = "15:04:05"
)

// ComputeWorkHours returns the elapsed hours between two HH:MM:SS times of the
// same day, rounded to two decimals. The arithmetic is time-of-day only and
// does not cross midnight; an outTime earlier than inTime yields an error.
func ComputeWorkHours(inTime, outTime string) (float64, error) {
	in, err := time.Parse(timeOfDayLayout, inTime)
	if err != nil {
		return 0, fmt.Errorf("invalid in time %q: %w", inTime, err)
	}
	out, err := time.Parse(timeOfDayLayout, outTime)
	if err != nil {
		return 0, fmt.Errorf("invalid out time %q: %w", outTime, err)
	}
	if out.Before(in) {
		return 0, fmt.Errorf("out time %s is before in time %s", outTime, inTime)
	}
	hours := out.Sub(in).Hours()
	return math.Round(hours*100) / 100, nil
}

// ClassifyWorkHours maps a worked duration onto the stored status. The result
// overrides whatever status the employee declared at check-in time.
func ClassifyWorkHours(workHours float64) Status {
	switch {
	case workHours < HalfDayThresholdHours:
		return StatusAbsent
	case workHours < FullDayThresholdHours:
		return StatusHalfDay
	default:
		return StatusPresent
	}
}
