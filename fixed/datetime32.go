package fixed

import "github.com/civilkit/go-civil/bithash"

// DateTime32 is a minute counter since the fast epoch with a cached
// 32-bit hash. The hash's 6-bit year field is epoch-relative, so the
// representable window is 64 fast years from 1970. Same staleness
// contract as DateTime64.
type DateTime32 struct {
	counter uint32
	hash    uint32
}

// New32 builds a value from decomposed fields, truncating what does
// not fit the 32-bit hash budgets.
func New32(year uint16, month, day, hour, minute uint8) DateTime32 {
	f := bithash.Fields{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}
	return DateTime32{
		counter: uint32(cal.SecondsSinceEpoch(year, month, day, hour, minute, 0) / 60),
		hash:    cal.Hash32(f),
	}
}

// Now32 returns the current instant at minute resolution.
func Now32() DateTime32 {
	counter := uint32(unixMillisNow() / millisPerMinute)
	return DateTime32{counter: counter, hash: cal.Hash32(fieldsFromMinutes(uint64(counter)))}
}

// FromUnixEpoch32 converts Unix seconds at minute resolution.
func FromUnixEpoch32(sec int64) DateTime32 {
	counter := uint32(sec / 60)
	return DateTime32{counter: counter, hash: cal.Hash32(fieldsFromMinutes(uint64(counter)))}
}

// FromHash32 rebuilds a consistent value from a packed hash.
func FromHash32(h uint32) DateTime32 {
	f := cal.FromHash32(h)
	return DateTime32{
		counter: uint32(cal.SecondsSinceEpoch(f.Year, f.Month, f.Day, f.Hour, f.Minute, 0) / 60),
		hash:    h,
	}
}

// Counter returns the raw minute counter.
func (d DateTime32) Counter() uint32 { return d.counter }

// Hash returns the cached packed hash.
func (d DateTime32) Hash() uint32 { return d.hash }

// Year reads the cached hash, not the counter.
func (d DateTime32) Year() uint16 { return cal.FromHash32(d.hash).Year }

// Month reads the cached hash, not the counter.
func (d DateTime32) Month() uint8 { return cal.FromHash32(d.hash).Month }

// Day reads the cached hash, not the counter.
func (d DateTime32) Day() uint8 { return cal.FromHash32(d.hash).Day }

// Hour reads the cached hash, not the counter.
func (d DateTime32) Hour() uint8 { return cal.FromHash32(d.hash).Hour }

// Minute reads the cached hash, not the counter.
func (d DateTime32) Minute() uint8 { return cal.FromHash32(d.hash).Minute }

// Add shifts the counter, wrapping silently; the cached hash is left
// stale until Rehash.
func (d DateTime32) Add(days, hours, minutes int64) DateTime32 {
	d.counter += uint32(days*minutesPerDay + hours*60 + minutes)
	return d
}

// WithYear rewrites the year bits of the cached hash only. The counter
// is untouched, so the value diverges until reconstructed.
func (d DateTime32) WithYear(year uint16) DateTime32 {
	f := cal.FromHash32(d.hash)
	f.Year = year
	d.hash = cal.Hash32(f)
	return d
}

// Rehash re-derives the cached hash from the counter.
func (d DateTime32) Rehash() DateTime32 {
	d.hash = cal.Hash32(fieldsFromMinutes(uint64(d.counter)))
	return d
}

// Synced reports whether the cached hash currently reflects the
// counter.
func (d DateTime32) Synced() bool {
	return d.hash == cal.Hash32(fieldsFromMinutes(uint64(d.counter)))
}

// Before orders by counter.
func (d DateTime32) Before(other DateTime32) bool { return d.counter < other.counter }

// After orders by counter.
func (d DateTime32) After(other DateTime32) bool { return d.counter > other.counter }
