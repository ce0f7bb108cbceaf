// Package civil provides calendar-aware civil date and date/time
// values: a year/month/day Date and a year-through-nanosecond DateTime
// bound to a Calendar variant and a TimeZone.
//
// Arithmetic never fails on out-of-range values. Raw sums are
// normalized by carrying excess into the next larger unit, bounded by
// the calendar's reported limits, so a nanosecond overflow can cascade
// all the way into a year rollover in a single Add call.
package civil

import (
	"github.com/civilkit/go-civil/calendar"
	"github.com/civilkit/go-civil/zone"
)

// Date is a year/month/day value bound to a calendar and a time zone.
// Dates are immutable: every operation returns a new value.
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
	TZ    zone.TimeZone
	Cal   calendar.Calendar
}

// NewDate returns a normalized date on the default Gregorian calendar
// in UTC. Out-of-range components are carried, not rejected.
func NewDate(year uint16, month, day uint8) Date {
	return NewDateIn(year, month, day, zone.UTC, calendar.Default)
}

// NewDateIn is NewDate with an explicit zone and calendar.
func NewDateIn(year uint16, month, day uint8, tz zone.TimeZone, cal calendar.Calendar) Date {
	d := Date{TZ: tz, Cal: cal}
	return d.normalized(int64(year), int64(month), int64(day))
}

// Add returns the date shifted by the span. The span's time fields
// contribute whole days; the sub-day remainder is dropped.
func (d Date) Add(s Span) Date {
	days := s.Days + floorDiv(s.Hours*3600+s.Minutes*60+s.Seconds, 86400)
	return d.normalized(
		int64(d.Year)+s.Years,
		int64(d.Month)+s.Months,
		int64(d.Day)+days,
	)
}

// Subtract returns the date shifted backward by the span.
func (d Date) Subtract(s Span) Date {
	return d.Add(s.Neg())
}

// normalized reduces raw overflowed sums field by field, largest unit
// first: the year wraps inside the calendar's year range, month excess
// carries into years, then day excess walks month by month since month
// lengths vary.
func (d Date) normalized(year, month, day int64) Date {
	cal := d.Cal

	year, month = normYearMonth(cal, year, month)

	for day > int64(cal.MaxDaysInMonth(uint16(year), uint8(month))) {
		day -= int64(cal.MaxDaysInMonth(uint16(year), uint8(month)))
		year, month = normYearMonth(cal, year, month+1)
	}
	for day < 1 {
		year, month = normYearMonth(cal, year, month-1)
		day += int64(cal.MaxDaysInMonth(uint16(year), uint8(month)))
	}

	d.Year = uint16(year)
	d.Month = uint8(month)
	d.Day = uint8(day)
	return d
}

// normYearMonth carries month excess into the year, then wraps the
// year inside the calendar's range.
func normYearMonth(cal calendar.Calendar, year, month int64) (int64, int64) {
	months := int64(cal.MaxMonth-cal.MinMonth) + 1
	carry := floorDiv(month-int64(cal.MinMonth), months)
	month -= carry * months
	year += carry

	years := int64(cal.MaxYear-cal.MinYear) + 1
	if year > int64(cal.MaxYear) || year < int64(cal.MinYear) {
		year = int64(cal.MinYear) + mod(year-int64(cal.MinYear), years)
	}
	return year, month
}

func mod(x, y int64) int64 {
	m := x % y
	if m < 0 {
		m += y
	}
	return m
}

// WithYear returns a copy with the year replaced and re-normalized.
func (d Date) WithYear(year uint16) Date {
	return d.normalized(int64(year), int64(d.Month), int64(d.Day))
}

// WithMonth returns a copy with the month replaced and re-normalized.
func (d Date) WithMonth(month uint8) Date {
	return d.normalized(int64(d.Year), int64(month), int64(d.Day))
}

// WithDay returns a copy with the day replaced and re-normalized.
func (d Date) WithDay(day uint8) Date {
	return d.normalized(int64(d.Year), int64(d.Month), int64(day))
}

// WithZone returns a copy in the given zone. The civil fields are
// unchanged; only resolution changes.
func (d Date) WithZone(tz zone.TimeZone) Date {
	d.TZ = tz
	return d
}

// WithCalendar re-anchors the date onto another calendar: the date's
// distance from its current epoch is preserved and re-decomposed under
// the new calendar, so the same instant is denoted, not the same
// field triple.
func (d Date) WithCalendar(cal calendar.Calendar) Date {
	days := d.Cal.DaysSinceEpoch(d.Year, d.Month, d.Day)
	year, month, day := cal.DateFromDays(days)
	return Date{Year: year, Month: month, Day: day, TZ: d.TZ, Cal: cal}
}

// DaysSinceEpoch returns whole days between the calendar's epoch and
// the date.
func (d Date) DaysSinceEpoch() uint64 {
	return d.Cal.DaysSinceEpoch(d.Year, d.Month, d.Day)
}

// SecondsSinceEpoch returns seconds between the calendar's epoch and
// the date's midnight.
func (d Date) SecondsSinceEpoch() uint64 {
	return d.Cal.SecondsSinceEpoch(d.Year, d.Month, d.Day, 0, 0, 0)
}

// DayOfWeek returns the date's weekday, Monday=0.
func (d Date) DayOfWeek() uint8 {
	return d.Cal.DayOfWeek(d.Year, d.Month, d.Day)
}

// Before reports whether d denotes an earlier day than other on d's
// calendar.
func (d Date) Before(other Date) bool {
	return d.DaysSinceEpoch() < other.DaysSinceEpoch()
}

// After reports whether d denotes a later day than other on d's
// calendar.
func (d Date) After(other Date) bool {
	return d.DaysSinceEpoch() > other.DaysSinceEpoch()
}
