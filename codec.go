package civil

import "github.com/civilkit/go-civil/bithash"

// StringCodec is the external collaborator that renders and parses
// civil timestamps as strings (ISO-8601 or otherwise). The core never
// formats strings itself; a failure is absence, never an error.
type StringCodec interface {
	// Format renders the fields under the codec's layout selector.
	Format(layout string, f bithash.Fields) (string, bool)
	// Parse extracts fields from value under the layout selector.
	Parse(layout, value string) (bithash.Fields, bool)
}

// Format renders the timestamp through the codec. The second return
// is false when the codec cannot produce a result.
func (dt DateTime) Format(codec StringCodec, layout string) (string, bool) {
	return codec.Format(layout, bithash.Fields{
		Year: dt.Year, Month: dt.Month, Day: dt.Day,
		Hour: dt.Hour, Minute: dt.Minute, Second: dt.Second,
		Milli: dt.Milli, Micro: dt.Micro,
	})
}

// ParseDateTime builds a normalized UTC timestamp from a string via
// the codec. A malformed value yields (zero, false).
func ParseDateTime(codec StringCodec, layout, value string) (DateTime, bool) {
	f, ok := codec.Parse(layout, value)
	if !ok {
		return DateTime{}, false
	}
	dt := NewDateTime(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
	dt.Milli, dt.Micro = f.Milli, f.Micro
	return dt, true
}
