package civil

// Span is the argument bundle for date/time arithmetic. Every field is
// a signed delta; fields may exceed their unit's range freely, the
// receiving value normalizes by carrying.
type Span struct {
	Years   int64
	Months  int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
	Milli   int64
	Micro   int64
	Nano    int64
}

// Add creates a new Span as addition of spans.
func (s Span) Add(add Span) Span {
	s.Years += add.Years
	s.Months += add.Months
	s.Days += add.Days
	s.Hours += add.Hours
	s.Minutes += add.Minutes
	s.Seconds += add.Seconds
	s.Milli += add.Milli
	s.Micro += add.Micro
	s.Nano += add.Nano

	return s
}

// Sub creates a new Span as subtraction of spans.
func (s Span) Sub(sub Span) Span {
	s.Years -= sub.Years
	s.Months -= sub.Months
	s.Days -= sub.Days
	s.Hours -= sub.Hours
	s.Minutes -= sub.Minutes
	s.Seconds -= sub.Seconds
	s.Milli -= sub.Milli
	s.Micro -= sub.Micro
	s.Nano -= sub.Nano

	return s
}

// Neg creates a new Span with every field negated.
func (s Span) Neg() Span {
	return Span{}.Sub(s)
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(x, y int64) int64 {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q
}
