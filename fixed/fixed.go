// Package fixed provides the fixed-resolution date/time family: four
// value types, each a single unsigned counter since the fast-calendar
// epoch (1970) plus a cached bit-packed hash of the decomposed fields.
//
// The family trades calendar correctness for O(1) arithmetic and a few
// bytes of storage: it runs on the simplified 365-day/30-day calendar
// and silently wraps on counter overflow.
//
// Hash staleness: field accessors read only the cached hash, and
// arithmetic mutates only the counter. A value produced by Add
// therefore reports fields from before the addition until Rehash is
// called; Synced reports whether accessors currently reflect the
// counter. Only freshly constructed and FromHash-derived values are
// guaranteed consistent.
package fixed

import (
	"time"

	"github.com/civilkit/go-civil/bithash"
	"github.com/civilkit/go-civil/calendar"
)

// The frozen calendar instance the whole family decomposes against.
var cal = calendar.UTCFast

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour

	minutesPerDay = 24 * 60
)

func fieldsFromMillis(ms uint64) bithash.Fields {
	year, month, day := calendar.FastDecompose(cal, ms/millisPerDay)
	rem := ms % millisPerDay
	return bithash.Fields{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   uint8(rem / millisPerHour),
		Minute: uint8(rem % millisPerHour / millisPerMinute),
		Second: uint8(rem % millisPerMinute / millisPerSecond),
		Milli:  uint16(rem % millisPerSecond),
	}
}

func fieldsFromMinutes(m uint64) bithash.Fields {
	year, month, day := calendar.FastDecompose(cal, m/minutesPerDay)
	rem := m % minutesPerDay
	return bithash.Fields{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   uint8(rem / 60),
		Minute: uint8(rem % 60),
	}
}

func fieldsFromHours(h uint64) bithash.Fields {
	year, month, day := calendar.FastDecompose(cal, h/24)
	return bithash.Fields{
		Year:  year,
		Month: month,
		Day:   day,
		Hour:  uint8(h % 24),
	}
}

func unixMillisNow() uint64 {
	return uint64(time.Now().UnixMilli())
}
