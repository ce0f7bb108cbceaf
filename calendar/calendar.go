// Package calendar provides the calendar abstraction behind the civil
// date/time types: a closed tagged union over a proleptic Gregorian
// calendar and a deliberately simplified fast UTC calendar.
//
// Every operation dispatches on the Kind tag. Adding a calendar means
// adding a Kind constant and handling it in each switch; there is no
// open interface to implement.
//
// See also:
//
//   - Proleptic Gregorian calendar:
//     https://en.wikipedia.org/wiki/Proleptic_Gregorian_calendar
//
//   - Day-count algorithms:
//     https://howardhinnant.github.io/date_algorithms.html
package calendar

import "github.com/civilkit/go-civil/bithash"

// Kind selects a calendar variant.
type Kind uint8

const (
	// Gregorian is the proleptic Gregorian calendar with true month
	// lengths, leap years and a constant leap-second correction.
	Gregorian Kind = iota
	// FastUTC is a simplified calendar with 365-day years and 30-day
	// months, no leap handling. It exists to back the fixed-width
	// date/time family and fast comparisons; it is intentionally
	// inaccurate as a civil calendar.
	FastUTC
)

// Calendar bundles a variant tag with the field limits the variant
// operates under. Calendars are immutable values, copied freely.
//
// Only the minimums that ever vary are carried explicitly: MinYear is
// the epoch anchor and MinMonth the first month. The remaining
// minimums are fixed — day starts at 1, hour, minute, second and the
// sub-second fields at 0.
type Calendar struct {
	Kind Kind

	MinYear uint16
	MaxYear uint16

	MinMonth uint8
	MaxMonth uint8

	MaxHour   uint8
	MaxMinute uint8
	MaxSecond uint8
	MaxMilli  uint16
	MaxMicro  uint16
	MaxNano   uint16
}

// NewGregorian returns the proleptic Gregorian calendar with its
// default year range.
func NewGregorian() Calendar {
	return Calendar{
		Kind:      Gregorian,
		MinYear:   1,
		MaxYear:   9999,
		MinMonth:  1,
		MaxMonth:  12,
		MaxHour:   23,
		MaxMinute: 59,
		MaxSecond: 59,
		MaxMilli:  999,
		MaxMicro:  999,
		MaxNano:   999,
	}
}

// NewGregorianAt returns a Gregorian calendar whose epoch is anchored
// at the given year. Used to rebase epoch-relative counters when a
// delta would not fit a fixed-width counter.
func NewGregorianAt(minYear uint16) Calendar {
	c := NewGregorian()
	c.MinYear = minYear
	return c
}

// NewFastUTC returns the simplified fast calendar anchored at 1970.
func NewFastUTC() Calendar {
	return Calendar{
		Kind:      FastUTC,
		MinYear:   1970,
		MaxYear:   9999,
		MinMonth:  1,
		MaxMonth:  12,
		MaxHour:   23,
		MaxMinute: 59,
		MaxSecond: 59,
		MaxMilli:  999,
		MaxMicro:  999,
		MaxNano:   999,
	}
}

// Default is the calendar used when a date/time value is constructed
// without an explicit one.
var Default = NewGregorian()

// UTCFast is the frozen instance backing the fixed date/time family.
var UTCFast = NewFastUTC()

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// IsLeapYear reports whether year is a leap year under the calendar.
func (c Calendar) IsLeapYear(year uint16) bool {
	switch c.Kind {
	case FastUTC:
		return false
	default:
		return gregorianIsLeap(year)
	}
}

// IsLeapSecond reports whether the given instant is a leap second
// insertion point. Only second 60 at the end of June or December of
// 1972 or later qualifies, and only under the Gregorian variant.
func (c Calendar) IsLeapSecond(year uint16, month, day, hour, minute, second uint8) bool {
	switch c.Kind {
	case FastUTC:
		return false
	default:
		if year < leapSecondFloorYear || second != 60 || minute != 59 || hour != 23 {
			return false
		}
		return (month == 6 && day == 30) || (month == 12 && day == 31)
	}
}

// DayOfWeek returns the weekday of the given date, Monday=0 .. Sunday=6.
func (c Calendar) DayOfWeek(year uint16, month, day uint8) uint8 {
	switch c.Kind {
	case FastUTC:
		return fastDayOfWeek(c, year, month, day)
	default:
		return gregorianDayOfWeek(year, month, day)
	}
}

// DayOfYear returns the ordinal day of the year, starting at 1.
func (c Calendar) DayOfYear(year uint16, month, day uint8) uint16 {
	switch c.Kind {
	case FastUTC:
		return uint16(month-1)*fastDaysPerMonth + uint16(day)
	default:
		return gregorianDayOfYear(year, month, day)
	}
}

// MaxDaysInMonth returns the number of days in the given month.
func (c Calendar) MaxDaysInMonth(year uint16, month uint8) uint8 {
	switch c.Kind {
	case FastUTC:
		return fastDaysPerMonth
	default:
		return gregorianDaysInMonth(year, month)
	}
}

// MonthRange returns the weekday of the first day of the month
// (Monday=0) and the number of days in the month.
func (c Calendar) MonthRange(year uint16, month uint8) (uint8, uint8) {
	return c.DayOfWeek(year, month, 1), c.MaxDaysInMonth(year, month)
}

// LeapSecsSinceEpoch returns the cumulative leap seconds between the
// calendar's epoch and the given date. The Gregorian variant models
// this as a constant 27 for any date in or after 1972; there is no
// historical table.
func (c Calendar) LeapSecsSinceEpoch(year uint16, month, day uint8) uint32 {
	switch c.Kind {
	case FastUTC:
		return 0
	default:
		if year >= leapSecondFloorYear {
			return leapSecondTotal
		}
		return 0
	}
}

// LeapDaysSinceEpoch returns the number of leap days between the
// calendar's epoch and the given date.
func (c Calendar) LeapDaysSinceEpoch(year uint16, month, day uint8) uint32 {
	switch c.Kind {
	case FastUTC:
		return 0
	default:
		return gregorianLeapDays(c.MinYear, year, month)
	}
}

// DaysSinceEpoch returns whole days between the calendar's epoch and
// the given date.
func (c Calendar) DaysSinceEpoch(year uint16, month, day uint8) uint64 {
	switch c.Kind {
	case FastUTC:
		return uint64(year-c.MinYear)*fastDaysPerYear +
			uint64(month-1)*fastDaysPerMonth + uint64(day-1)
	default:
		// 365-day baseline plus the accumulated leap days; the leap
		// correction is added once, not per year.
		return uint64(year-c.MinYear)*365 +
			uint64(c.LeapDaysSinceEpoch(year, month, day)) +
			uint64(gregorianDaysBeforeMonth(month)) + uint64(day-1)
	}
}

// DateFromDays is the inverse of DaysSinceEpoch: it decomposes a
// whole-day count since the calendar's epoch into (year, month, day).
func (c Calendar) DateFromDays(days uint64) (uint16, uint8, uint8) {
	switch c.Kind {
	case FastUTC:
		return FastDecompose(c, days)
	default:
		return gregorianFromDays(c.MinYear, days)
	}
}

// SecondsSinceEpoch returns seconds between the calendar's epoch and
// the given instant, including the leap-second correction.
func (c Calendar) SecondsSinceEpoch(year uint16, month, day, hour, minute, second uint8) uint64 {
	return c.DaysSinceEpoch(year, month, day)*secondsPerDay +
		uint64(hour)*secondsPerHour +
		uint64(minute)*secondsPerMinute +
		uint64(second) +
		uint64(c.LeapSecsSinceEpoch(year, month, day))
}

// MillisecondsSinceEpoch extends SecondsSinceEpoch to milliseconds.
func (c Calendar) MillisecondsSinceEpoch(year uint16, month, day, hour, minute, second uint8, milli uint16) uint64 {
	return c.SecondsSinceEpoch(year, month, day, hour, minute, second)*1000 + uint64(milli)
}

// NanosecondsSinceEpoch extends SecondsSinceEpoch to nanoseconds.
func (c Calendar) NanosecondsSinceEpoch(year uint16, month, day, hour, minute, second uint8, milli, micro, nano uint16) uint64 {
	return c.SecondsSinceEpoch(year, month, day, hour, minute, second)*1_000_000_000 +
		uint64(milli)*1_000_000 + uint64(micro)*1_000 + uint64(nano)
}

// Hash64 packs fields into the 64-bit layout. The year is stored as an
// absolute value.
func (c Calendar) Hash64(f bithash.Fields) uint64 {
	return bithash.Pack64(f)
}

// FromHash64 is the inverse of Hash64.
func (c Calendar) FromHash64(h uint64) bithash.Fields {
	return bithash.Unpack64(h)
}

// Hash32 packs fields into the 32-bit layout. The year is stored
// relative to the calendar's epoch to fit its 6-bit budget.
func (c Calendar) Hash32(f bithash.Fields) uint32 {
	f.Year -= c.MinYear
	return bithash.Pack32(f)
}

// FromHash32 is the inverse of Hash32.
func (c Calendar) FromHash32(h uint32) bithash.Fields {
	f := bithash.Unpack32(h)
	f.Year += c.MinYear
	return f
}

// Hash16 packs fields into the 16-bit layout (epoch-relative year,
// down to the hour).
func (c Calendar) Hash16(f bithash.Fields) uint16 {
	f.Year -= c.MinYear
	return bithash.Pack16(f)
}

// FromHash16 is the inverse of Hash16.
func (c Calendar) FromHash16(h uint16) bithash.Fields {
	f := bithash.Unpack16(h)
	f.Year += c.MinYear
	return f
}

// Hash8 packs fields into the 8-bit layout (day and hour only).
func (c Calendar) Hash8(f bithash.Fields) uint8 {
	return bithash.Pack8(f)
}

// FromHash8 is the inverse of Hash8.
func (c Calendar) FromHash8(h uint8) bithash.Fields {
	return bithash.Unpack8(h)
}
