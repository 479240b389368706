package valueobject

import (
	"time"

	domainerror "github.com/farmx/ledger-backend/internal/domain/error"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// DateWindow is a filter over transaction dates. Start is always inclusive.
// End is inclusive for explicit ranges and exclusive for the default day window.
// A zero Start or End leaves that side of the range open.
type DateWindow struct {
	Start        time.Time
	End          time.Time
	EndInclusive bool
}

// CalendarDate truncates t to midnight of its calendar day, expressed in UTC.
// Transaction dates are stored this way regardless of the business time zone.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDate,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidDate,
		)
	}
	return t, nil
}

// TodayWindow returns [today 00:00, tomorrow 00:00) for the day now falls on in loc.
func TodayWindow(now time.Time, loc *time.Location) DateWindow {
	if loc == nil {
		loc = time.UTC
	}
	today := CalendarDate(now.In(loc))
	return DateWindow{
		Start: today,
		End:   today.AddDate(0, 0, 1),
	}
}

// NewDateWindow covers startDate 00:00:00.000 through endDate 23:59:59.999.
func NewDateWindow(startDate, endDate time.Time) (DateWindow, error) {
	start := CalendarDate(startDate)
	end := CalendarDate(endDate)
	if end.Before(start) {
		return DateWindow{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return DateWindow{
		Start:        start,
		End:          end.Add(24*time.Hour - time.Millisecond),
		EndInclusive: true,
	}, nil
}

// ResolveWindow picks the explicit range when given, otherwise today.
// A single bound leaves the other side open: start_date alone matches every
// date from start onwards, end_date alone every date up to the end of that day.
func ResolveWindow(startDate, endDate *time.Time, now time.Time, loc *time.Location) (DateWindow, error) {
	switch {
	case startDate == nil && endDate == nil:
		return TodayWindow(now, loc), nil
	case startDate == nil:
		return DateWindow{
			End:          CalendarDate(*endDate).Add(24*time.Hour - time.Millisecond),
			EndInclusive: true,
		}, nil
	case endDate == nil:
		return DateWindow{Start: CalendarDate(*startDate)}, nil
	default:
		return NewDateWindow(*startDate, *endDate)
	}
}

// HasStart reports whether the window has a lower bound.
func (w DateWindow) HasStart() bool {
	return !w.Start.IsZero()
}

// HasEnd reports whether the window has an upper bound.
func (w DateWindow) HasEnd() bool {
	return !w.End.IsZero()
}

// LastDay returns the last calendar date the window covers, or the zero time
// when the window has no upper bound.
func (w DateWindow) LastDay() time.Time {
	switch {
	case !w.HasEnd():
		return time.Time{}
	case w.EndInclusive:
		return CalendarDate(w.End)
	default:
		return CalendarDate(w.End.Add(-time.Millisecond))
	}
}

// IsSingleDay reports whether the window covers exactly one calendar date.
func (w DateWindow) IsSingleDay() bool {
	if !w.HasStart() || !w.HasEnd() {
		return false
	}
	return CalendarDate(w.Start).Equal(w.LastDay())
}

// Bounds renders the first and last covered dates as YYYY-MM-DD.
// An open side renders as an empty string.
func (w DateWindow) Bounds() (string, string) {
	var start, end string
	if w.HasStart() {
		start = w.Start.Format(DateLayout)
	}
	if w.HasEnd() {
		end = w.LastDay().Format(DateLayout)
	}
	return start, end
}

// Contains reports whether t falls inside the window.
func (w DateWindow) Contains(t time.Time) bool {
	if w.HasStart() && t.Before(w.Start) {
		return false
	}
	switch {
	case !w.HasEnd():
		return true
	case w.EndInclusive:
		return !t.After(w.End)
	default:
		return t.Before(w.End)
	}
}
