package fixed

import "github.com/civilkit/go-civil/bithash"

// DateTime8 is an hour counter with a cached 8-bit hash: ten and a
// half days of range, day-of-month modulo 8 plus hour in the hash.
type DateTime8 struct {
	counter uint8
	hash    uint8
}

func fields8(counter uint8) bithash.Fields {
	return bithash.Fields{Day: counter/24 + 1, Hour: counter % 24}
}

// New8 builds a value from a day and hour, truncating what does not
// fit the 8-bit hash budgets.
func New8(day, hour uint8) DateTime8 {
	return DateTime8{
		counter: (day-1)*24 + hour,
		hash:    cal.Hash8(bithash.Fields{Day: day, Hour: hour}),
	}
}

// Now8 returns the current instant at hour resolution. The counter
// covers ten and a half days, so the wall clock wraps into it.
func Now8() DateTime8 {
	counter := uint8(unixMillisNow() / millisPerHour)
	return DateTime8{counter: counter, hash: cal.Hash8(fields8(counter))}
}

// FromUnixEpoch8 converts Unix seconds at hour resolution, wrapping
// like all counter arithmetic here.
func FromUnixEpoch8(sec int64) DateTime8 {
	counter := uint8(sec / 3600)
	return DateTime8{counter: counter, hash: cal.Hash8(fields8(counter))}
}

// FromHash8 rebuilds a consistent value from a packed hash.
func FromHash8(h uint8) DateTime8 {
	f := cal.FromHash8(h)
	return DateTime8{counter: (f.Day-1)*24 + f.Hour, hash: h}
}

// Counter returns the raw hour counter.
func (d DateTime8) Counter() uint8 { return d.counter }

// Hash returns the cached packed hash.
func (d DateTime8) Hash() uint8 { return d.hash }

// Day reads the cached hash, not the counter.
func (d DateTime8) Day() uint8 { return cal.FromHash8(d.hash).Day }

// Hour reads the cached hash, not the counter.
func (d DateTime8) Hour() uint8 { return cal.FromHash8(d.hash).Hour }

// Add shifts the counter, wrapping silently; the cached hash is left
// stale until Rehash.
func (d DateTime8) Add(days, hours int64) DateTime8 {
	d.counter += uint8(days*24 + hours)
	return d
}

// WithDay rewrites the day bits of the cached hash only. The counter
// is untouched, so the value diverges until reconstructed.
func (d DateTime8) WithDay(day uint8) DateTime8 {
	f := cal.FromHash8(d.hash)
	f.Day = day
	d.hash = cal.Hash8(f)
	return d
}

// Rehash re-derives the cached hash from the counter.
func (d DateTime8) Rehash() DateTime8 {
	d.hash = cal.Hash8(fields8(d.counter))
	return d
}

// Synced reports whether the cached hash currently reflects the
// counter.
func (d DateTime8) Synced() bool {
	return d.hash == cal.Hash8(fields8(d.counter))
}

// Before orders by counter.
func (d DateTime8) Before(other DateTime8) bool { return d.counter < other.counter }

// After orders by counter.
func (d DateTime8) After(other DateTime8) bool { return d.counter > other.counter }
