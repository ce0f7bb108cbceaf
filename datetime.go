package civil

import (
	"github.com/civilkit/go-civil/bithash"
	"github.com/civilkit/go-civil/calendar"
	"github.com/civilkit/go-civil/zone"
)

// DateTime is a civil timestamp with year through nanosecond fields,
// bound to a calendar and a time zone. Like Date it is immutable and
// normalizes arithmetic by carrying.
//
// The second field holds 60 only on a leap second insertion point as
// reported by the calendar.
type DateTime struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
	Milli  uint16
	Micro  uint16
	Nano   uint16
	TZ     zone.TimeZone
	Cal    calendar.Calendar
}

// NewDateTime returns a normalized timestamp on the default Gregorian
// calendar in UTC.
func NewDateTime(year uint16, month, day, hour, minute, second uint8) DateTime {
	return DateTime{TZ: zone.UTC, Cal: calendar.Default}.normalized(
		int64(year), int64(month), int64(day),
		int64(hour), int64(minute), int64(second), 0, 0, 0)
}

// NewDateTimeIn is NewDateTime with an explicit zone and calendar and
// sub-second fields.
func NewDateTimeIn(year uint16, month, day, hour, minute, second uint8,
	milli, micro, nano uint16, tz zone.TimeZone, cal calendar.Calendar) DateTime {

	return DateTime{TZ: tz, Cal: cal}.normalized(
		int64(year), int64(month), int64(day),
		int64(hour), int64(minute), int64(second),
		int64(milli), int64(micro), int64(nano))
}

// FromUnix returns the UTC timestamp for the given Unix time on the
// default Gregorian calendar.
func FromUnix(sec int64, nano int64) DateTime {
	cal := calendar.Default
	base := int64(cal.DaysSinceEpoch(1970, 1, 1))

	days := base + floorDiv(sec, 86400)
	rem := sec - (days-base)*86400
	year, month, day := cal.DateFromDays(uint64(days))

	return DateTime{TZ: zone.UTC, Cal: cal}.normalized(
		int64(year), int64(month), int64(day),
		rem/3600, rem%3600/60, rem%60,
		0, 0, nano)
}

// Add returns the timestamp shifted by the span. Carries propagate in
// strict unit order from nanoseconds upward, so overflow in any field
// can cascade into a year rollover.
func (dt DateTime) Add(s Span) DateTime {
	return dt.normalized(
		int64(dt.Year)+s.Years,
		int64(dt.Month)+s.Months,
		int64(dt.Day)+s.Days,
		int64(dt.Hour)+s.Hours,
		int64(dt.Minute)+s.Minutes,
		int64(dt.Second)+s.Seconds,
		int64(dt.Milli)+s.Milli,
		int64(dt.Micro)+s.Micro,
		int64(dt.Nano)+s.Nano)
}

// Subtract returns the timestamp shifted backward by the span.
func (dt DateTime) Subtract(s Span) DateTime {
	return dt.Add(s.Neg())
}

func (dt DateTime) normalized(year, month, day, hour, minute, second, milli, micro, nano int64) DateTime {
	// Sub-second and time-of-day units have fixed radices; reduce them
	// lowest first so each carry lands before the next unit is cut.
	carry := floorDiv(nano, 1000)
	nano -= carry * 1000
	micro += carry

	carry = floorDiv(micro, 1000)
	micro -= carry * 1000
	milli += carry

	carry = floorDiv(milli, 1000)
	milli -= carry * 1000
	second += carry

	// A genuine leap second stays at :60 instead of carrying. The date
	// fields are still raw sums here, so the instant only qualifies when
	// every field is already in range; anything else carries normally
	// and gets folded by the date normalization below.
	leap := second == 60 && year >= 0 && year <= 0xffff &&
		month >= 1 && month <= 12 && day >= 1 && day <= 31 &&
		hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59 &&
		dt.Cal.IsLeapSecond(uint16(year), uint8(month), uint8(day),
			uint8(hour), uint8(minute), 60)
	if !leap {
		carry = floorDiv(second, 60)
		second -= carry * 60
		minute += carry
	}

	carry = floorDiv(minute, 60)
	minute -= carry * 60
	hour += carry

	carry = floorDiv(hour, 24)
	hour -= carry * 24
	day += carry

	d := Date{TZ: dt.TZ, Cal: dt.Cal}.normalized(year, month, day)

	dt.Year, dt.Month, dt.Day = d.Year, d.Month, d.Day
	dt.Hour = uint8(hour)
	dt.Minute = uint8(minute)
	dt.Second = uint8(second)
	dt.Milli = uint16(milli)
	dt.Micro = uint16(micro)
	dt.Nano = uint16(nano)
	return dt
}

// Date returns the timestamp's date part.
func (dt DateTime) Date() Date {
	return Date{Year: dt.Year, Month: dt.Month, Day: dt.Day, TZ: dt.TZ, Cal: dt.Cal}
}

func (dt DateTime) renorm() DateTime {
	return dt.normalized(int64(dt.Year), int64(dt.Month), int64(dt.Day),
		int64(dt.Hour), int64(dt.Minute), int64(dt.Second),
		int64(dt.Milli), int64(dt.Micro), int64(dt.Nano))
}

// WithYear returns a copy with the year replaced and re-normalized.
func (dt DateTime) WithYear(year uint16) DateTime {
	dt.Year = year
	return dt.renorm()
}

// WithMonth returns a copy with the month replaced and re-normalized.
func (dt DateTime) WithMonth(month uint8) DateTime {
	dt.Month = month
	return dt.renorm()
}

// WithDay returns a copy with the day replaced and re-normalized.
func (dt DateTime) WithDay(day uint8) DateTime {
	dt.Day = day
	return dt.renorm()
}

// WithTime returns a copy with the time of day replaced and
// re-normalized.
func (dt DateTime) WithTime(hour, minute, second uint8) DateTime {
	dt.Hour, dt.Minute, dt.Second = hour, minute, second
	return dt.renorm()
}

// WithZone returns a copy in the given zone, fields unchanged.
func (dt DateTime) WithZone(tz zone.TimeZone) DateTime {
	dt.TZ = tz
	return dt
}

// WithCalendar re-anchors the timestamp onto another calendar,
// preserving the distance from the epoch rather than the raw fields.
func (dt DateTime) WithCalendar(cal calendar.Calendar) DateTime {
	days := dt.Cal.DaysSinceEpoch(dt.Year, dt.Month, dt.Day)
	year, month, day := cal.DateFromDays(days)
	dt.Year, dt.Month, dt.Day = year, month, day
	dt.Cal = cal
	return dt
}

// Offset resolves the zone offset in force at the timestamp.
func (dt DateTime) Offset() zone.Offset {
	return dt.TZ.OffsetAt(dt.Cal, dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}

// ToUTC shifts the timestamp by its resolved offset into UTC, then
// corrects by the cumulative leap seconds of the shifted date.
func (dt DateTime) ToUTC() DateTime {
	o := dt.Offset()
	shift := Span{Minutes: int64(o.Minutes())}
	out := dt.Subtract(shift)
	out.TZ = zone.UTC
	return out.leapCorrected(dt)
}

// FromUTC reinterprets a UTC timestamp in the given zone.
func (dt DateTime) FromUTC(tz zone.TimeZone) DateTime {
	o := tz.OffsetAt(dt.Cal, dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
	out := dt.Add(Span{Minutes: int64(o.Minutes())})
	out.TZ = tz
	return out.leapCorrected(dt)
}

// leapCorrected applies the difference in cumulative leap seconds
// between the shifted date and the original one. With the constant
// leap-second model this only matters when a shift crosses the 1972
// floor.
func (dt DateTime) leapCorrected(from DateTime) DateTime {
	after := int64(dt.Cal.LeapSecsSinceEpoch(dt.Year, dt.Month, dt.Day))
	before := int64(from.Cal.LeapSecsSinceEpoch(from.Year, from.Month, from.Day))
	if after == before {
		return dt
	}
	return dt.Add(Span{Seconds: before - after})
}

// SecondsSinceEpoch returns seconds between the calendar's epoch and
// the timestamp.
func (dt DateTime) SecondsSinceEpoch() uint64 {
	return dt.Cal.SecondsSinceEpoch(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}

// NanosecondsSinceEpoch returns nanoseconds between the calendar's
// epoch and the timestamp.
func (dt DateTime) NanosecondsSinceEpoch() uint64 {
	return dt.Cal.NanosecondsSinceEpoch(dt.Year, dt.Month, dt.Day,
		dt.Hour, dt.Minute, dt.Second, dt.Milli, dt.Micro, dt.Nano)
}

// Hash64 packs the timestamp's fields into the 64-bit layout.
func (dt DateTime) Hash64() uint64 {
	return dt.Cal.Hash64(bithash.Fields{
		Year: dt.Year, Month: dt.Month, Day: dt.Day,
		Hour: dt.Hour, Minute: dt.Minute, Second: dt.Second,
		Milli: dt.Milli, Micro: dt.Micro,
	})
}

// Before reports whether dt denotes an earlier instant than other on
// dt's calendar.
func (dt DateTime) Before(other DateTime) bool {
	a, b := dt.NanosecondsSinceEpoch(), other.NanosecondsSinceEpoch()
	return a < b
}

// After reports whether dt denotes a later instant than other on dt's
// calendar.
func (dt DateTime) After(other DateTime) bool {
	a, b := dt.NanosecondsSinceEpoch(), other.NanosecondsSinceEpoch()
	return a > b
}
