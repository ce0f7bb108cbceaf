package zone

import "github.com/civilkit/go-civil/calendar"

// TimeZone resolves civil timestamps to UTC offsets. A zone without
// DST carries its offset directly; a zone with DST uses its name as
// the lookup key for the packed DstZone record.
//
// TimeZone is a comparable value: equality is by name and stored
// offset fields, never by resolved offset.
type TimeZone struct {
	Name   string
	Std    Offset
	HasDST bool
}

// UTC is the zero-offset zone without DST.
var UTC = TimeZone{Name: "UTC", Std: MustOffset(1, 0, 0, false)}

// New returns a zone with a static offset and no DST.
func New(name string, std Offset) TimeZone {
	return TimeZone{Name: name, Std: std}
}

// NewDST returns a zone whose DST record is looked up by name. The
// static offset is kept as the fallback for a failed lookup.
func NewDST(name string, std Offset) TimeZone {
	return TimeZone{Name: name, Std: std, HasDST: true}
}

// OffsetAt resolves the offset in force at the given civil instant.
// Zones without DST, and zones whose record lookup misses, resolve to
// the stored standard offset.
func (tz TimeZone) OffsetAt(cal calendar.Calendar, year uint16, month, day, hour, minute, second uint8) Offset {
	if !tz.HasDST {
		return tz.Std
	}
	rec, ok := Lookup(tz.Name)
	if !ok || !rec.DST {
		return tz.Std
	}
	z := rec.Zone
	std := z.Std()
	if dstActive(cal, z, year, month, day, hour) {
		return std.dst()
	}
	return std
}

// dstActive decides whether DST is in force at the given instant.
// When the start month precedes the end month the zone is a northern
// hemisphere one and DST spans the months strictly between them; when
// the start month follows the end month (southern hemisphere) DST
// spans the year boundary. The transition months themselves need the
// rule evaluated against the exact instant.
func dstActive(cal calendar.Calendar, z DstZone, year uint16, month, day, hour uint8) bool {
	start, end := z.Start(), z.End()
	sm, em := start.Month(), end.Month()

	switch {
	case month == sm:
		return atOrAfterTransition(cal, start, year, day, hour)
	case month == em:
		return !atOrAfterTransition(cal, end, year, day, hour)
	case sm < em:
		return month > sm && month < em
	default:
		return month > sm || month < em
	}
}

// atOrAfterTransition reports whether the instant (day, hour) falls at
// or after the rule's transition instant within the rule's month. Ties
// at the exact instant resolve to "after".
func atOrAfterTransition(cal calendar.Calendar, r TransitionRule, year uint16, day, hour uint8) bool {
	td := transitionDay(cal, r, year)
	if day != td {
		return day > td
	}
	return hour >= r.Hour()
}

// transitionDay finds the day of month the rule names: it scans the
// month for the rule's weekday, forward from day 1 or backward from
// the last day, and stops at the first or second occurrence.
func transitionDay(cal calendar.Calendar, r TransitionRule, year uint16) uint8 {
	month := r.Month()
	target := r.DayOfWeek()
	want := 1
	if r.Second() {
		want = 2
	}

	last := cal.MaxDaysInMonth(year, month)
	seen := 0
	if r.FromMonthEnd() {
		for d := last; d >= 1; d-- {
			if cal.DayOfWeek(year, month, d) == target {
				seen++
				if seen == want {
					return d
				}
			}
		}
	} else {
		for d := uint8(1); d <= last; d++ {
			if cal.DayOfWeek(year, month, d) == target {
				seen++
				if seen == want {
					return d
				}
			}
		}
	}
	// A weekday always occurs at least four times in a month; the
	// scan cannot fall through with a valid rule.
	return last
}
