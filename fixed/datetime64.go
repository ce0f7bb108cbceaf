package fixed

import "github.com/civilkit/go-civil/bithash"

// DateTime64 is a millisecond counter since the fast epoch with a
// cached 64-bit hash. See the package comment for the staleness
// contract.
type DateTime64 struct {
	counter uint64
	hash    uint64
}

// New64 builds a value from decomposed fields. Fields wider than their
// hash budgets are truncated by masking.
func New64(year uint16, month, day, hour, minute, second uint8, milli uint16) DateTime64 {
	f := bithash.Fields{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second, Milli: milli,
	}
	return DateTime64{
		counter: cal.MillisecondsSinceEpoch(year, month, day, hour, minute, second, milli),
		hash:    cal.Hash64(f),
	}
}

// Now64 returns the current instant.
func Now64() DateTime64 {
	counter := unixMillisNow()
	return DateTime64{counter: counter, hash: cal.Hash64(fieldsFromMillis(counter))}
}

// FromUnixEpoch64 converts Unix seconds. The fast epoch coincides with
// the Unix epoch, so the counter is a direct scale; negative input
// wraps silently like all counter arithmetic here.
func FromUnixEpoch64(sec int64) DateTime64 {
	counter := uint64(sec) * millisPerSecond
	return DateTime64{counter: counter, hash: cal.Hash64(fieldsFromMillis(counter))}
}

// FromHash64 rebuilds a value from a packed hash. The counter is
// re-derived, so the result is consistent by construction.
func FromHash64(h uint64) DateTime64 {
	f := cal.FromHash64(h)
	return DateTime64{
		counter: cal.MillisecondsSinceEpoch(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Milli),
		hash:    h,
	}
}

// Counter returns the raw millisecond counter.
func (d DateTime64) Counter() uint64 { return d.counter }

// Hash returns the cached packed hash.
func (d DateTime64) Hash() uint64 { return d.hash }

// Year reads the cached hash, not the counter.
func (d DateTime64) Year() uint16 { return cal.FromHash64(d.hash).Year }

// Month reads the cached hash, not the counter.
func (d DateTime64) Month() uint8 { return cal.FromHash64(d.hash).Month }

// Day reads the cached hash, not the counter.
func (d DateTime64) Day() uint8 { return cal.FromHash64(d.hash).Day }

// Hour reads the cached hash, not the counter.
func (d DateTime64) Hour() uint8 { return cal.FromHash64(d.hash).Hour }

// Minute reads the cached hash, not the counter.
func (d DateTime64) Minute() uint8 { return cal.FromHash64(d.hash).Minute }

// Second reads the cached hash, not the counter.
func (d DateTime64) Second() uint8 { return cal.FromHash64(d.hash).Second }

// Milli reads the cached hash, not the counter.
func (d DateTime64) Milli() uint16 { return cal.FromHash64(d.hash).Milli }

// Add shifts the counter; the cached hash is left stale until Rehash.
func (d DateTime64) Add(days, hours, minutes, seconds int64) DateTime64 {
	return d.AddMillis(days*millisPerDay + hours*millisPerHour +
		minutes*millisPerMinute + seconds*millisPerSecond)
}

// AddMillis shifts the counter by raw milliseconds, wrapping silently;
// the cached hash is left stale until Rehash.
func (d DateTime64) AddMillis(ms int64) DateTime64 {
	d.counter += uint64(ms)
	return d
}

// WithYear rewrites the year bits of the cached hash only. The counter
// is untouched, so the value diverges until reconstructed.
func (d DateTime64) WithYear(year uint16) DateTime64 {
	f := cal.FromHash64(d.hash)
	f.Year = year
	d.hash = cal.Hash64(f)
	return d
}

// Rehash re-derives the cached hash from the counter, restoring
// accessor consistency.
func (d DateTime64) Rehash() DateTime64 {
	d.hash = cal.Hash64(fieldsFromMillis(d.counter))
	return d
}

// Synced reports whether the cached hash currently reflects the
// counter.
func (d DateTime64) Synced() bool {
	return d.hash == cal.Hash64(fieldsFromMillis(d.counter))
}

// Before orders by counter; the hash plays no part.
func (d DateTime64) Before(other DateTime64) bool { return d.counter < other.counter }

// After orders by counter; the hash plays no part.
func (d DateTime64) After(other DateTime64) bool { return d.counter > other.counter }
