package fixed

import "github.com/civilkit/go-civil/bithash"

// DateTime16 is an hour counter since the fast epoch with a cached
// 16-bit hash: roughly seven and a half fast years of range, with a
// 2-bit epoch-relative year in the hash.
type DateTime16 struct {
	counter uint16
	hash    uint16
}

// New16 builds a value from decomposed fields, truncating what does
// not fit the 16-bit hash budgets.
func New16(year uint16, month, day, hour uint8) DateTime16 {
	f := bithash.Fields{Year: year, Month: month, Day: day, Hour: hour}
	return DateTime16{
		counter: uint16(cal.SecondsSinceEpoch(year, month, day, hour, 0, 0) / 3600),
		hash:    cal.Hash16(f),
	}
}

// Now16 returns the current instant at hour resolution.
func Now16() DateTime16 {
	counter := uint16(unixMillisNow() / millisPerHour)
	return DateTime16{counter: counter, hash: cal.Hash16(fieldsFromHours(uint64(counter)))}
}

// FromUnixEpoch16 converts Unix seconds at hour resolution.
func FromUnixEpoch16(sec int64) DateTime16 {
	counter := uint16(sec / 3600)
	return DateTime16{counter: counter, hash: cal.Hash16(fieldsFromHours(uint64(counter)))}
}

// FromHash16 rebuilds a consistent value from a packed hash.
func FromHash16(h uint16) DateTime16 {
	f := cal.FromHash16(h)
	return DateTime16{
		counter: uint16(cal.SecondsSinceEpoch(f.Year, f.Month, f.Day, f.Hour, 0, 0) / 3600),
		hash:    h,
	}
}

// Counter returns the raw hour counter.
func (d DateTime16) Counter() uint16 { return d.counter }

// Hash returns the cached packed hash.
func (d DateTime16) Hash() uint16 { return d.hash }

// Year reads the cached hash, not the counter.
func (d DateTime16) Year() uint16 { return cal.FromHash16(d.hash).Year }

// Month reads the cached hash, not the counter.
func (d DateTime16) Month() uint8 { return cal.FromHash16(d.hash).Month }

// Day reads the cached hash, not the counter.
func (d DateTime16) Day() uint8 { return cal.FromHash16(d.hash).Day }

// Hour reads the cached hash, not the counter.
func (d DateTime16) Hour() uint8 { return cal.FromHash16(d.hash).Hour }

// Add shifts the counter, wrapping silently; the cached hash is left
// stale until Rehash.
func (d DateTime16) Add(days, hours int64) DateTime16 {
	d.counter += uint16(days*24 + hours)
	return d
}

// WithYear rewrites the year bits of the cached hash only. The counter
// is untouched, so the value diverges until reconstructed.
func (d DateTime16) WithYear(year uint16) DateTime16 {
	f := cal.FromHash16(d.hash)
	f.Year = year
	d.hash = cal.Hash16(f)
	return d
}

// Rehash re-derives the cached hash from the counter.
func (d DateTime16) Rehash() DateTime16 {
	d.hash = cal.Hash16(fieldsFromHours(uint64(d.counter)))
	return d
}

// Synced reports whether the cached hash currently reflects the
// counter.
func (d DateTime16) Synced() bool {
	return d.hash == cal.Hash16(fieldsFromHours(uint64(d.counter)))
}

// Before orders by counter.
func (d DateTime16) Before(other DateTime16) bool { return d.counter < other.counter }

// After orders by counter.
func (d DateTime16) After(other DateTime16) bool { return d.counter > other.counter }
