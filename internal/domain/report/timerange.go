package report

import (
	"time"

	"github.com/studiosnap/backend/internal/domain/shared"
)

// TimeRange selects the reporting window.
type TimeRange string

const (
	RangeWeek    TimeRange = "week"
	RangeMonth   TimeRange = "month"
	RangeQuarter TimeRange = "quarter"
	RangeYear    TimeRange = "year"
	RangeGlobal  TimeRange = "global"
	RangeCustom  TimeRange = "custom"
)

// Valid reports whether the selector is one of the supported ranges.
func (r TimeRange) Valid() bool {
	switch r {
	case RangeWeek, RangeMonth, RangeQuarter, RangeYear, RangeGlobal, RangeCustom:
		return true
	}
	return false
}

// Window is a resolved inclusive reporting interval. A global window has no
// bounds and contains everything.
type Window struct {
	Start  time.Time
	End    time.Time
	Global bool
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.Global {
		return true
	}
	return !t.Before(w.Start) && !t.After(w.End)
}

// Bounds returns the window edges as nullable pointers for repository
// queries. Both are nil for a global window.
func (w Window) Bounds() (from, to *time.Time) {
	if w.Global {
		return nil, nil
	}
	start, end := w.Start, w.End
	return &start, &end
}

// ResolveWindow turns a range selector into a concrete interval. The result
// depends only on the arguments; "now" anchors the calendar ranges. Custom
// ranges require both bounds, and the end bound is pushed to the end of its
// day so same-day rows are included.
func ResolveWindow(sel TimeRange, now time.Time, customStart, customEnd *time.Time) (Window, error) {
	switch sel {
	case RangeGlobal:
		return Window{Global: true}, nil

	case RangeWeek:
		day := startOfDay(now)
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return Window{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}, nil

	case RangeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Start: start, End: endOfDay(start.AddDate(0, 1, -1))}, nil

	case RangeQuarter:
		qStart := time.Month((int(now.Month())-1)/3*3 + 1)
		start := time.Date(now.Year(), qStart, 1, 0, 0, 0, 0, now.Location())
		return Window{Start: start, End: endOfDay(start.AddDate(0, 3, -1))}, nil

	case RangeYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return Window{Start: start, End: endOfDay(start.AddDate(1, 0, -1))}, nil

	case RangeCustom:
		if customStart == nil || customEnd == nil {
			return Window{}, shared.NewDomainError("INVALID_INPUT", "custom range requires both start and end dates")
		}
		start := startOfDay(*customStart)
		end := endOfDay(*customEnd)
		if end.Before(start) {
			return Window{}, shared.NewDomainError("INVALID_INPUT", "custom range end date is before start date")
		}
		return Window{Start: start, End: end}, nil

	default:
		return Window{}, shared.NewDomainError("INVALID_INPUT", "unknown time range: "+string(sel))
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Millisecond)
}
