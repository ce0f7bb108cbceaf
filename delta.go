package civil

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// A 400-year Gregorian cycle is exactly 146097 days, so stripping
// whole cycles from an operand never disturbs leap-day structure.
const (
	cycleYears = 400
	cycleDays  = 146097
)

// maxDeltaYears is the widest year span whose nanosecond count is
// guaranteed to fit a uint64 counter (the true ceiling is ~584 years).
const maxDeltaYears = 500

// Delta is the result of DeltaNanoseconds: both operands' nanosecond
// counters on a shared anchored epoch, plus the whole years stripped
// from the later operand when the raw span would overflow the
// counters. OverflowYears is always a multiple of 400.
type Delta struct {
	SelfNS        uint64
	OtherNS       uint64
	OverflowYears int64
	Sign          int
}

// DeltaNanoseconds computes the distance between two timestamps
// without overflowing a 64-bit nanosecond counter. Both operands are
// rebased onto a synthetic calendar anchored at the earlier operand's
// year; when they are further apart than the counter can represent,
// whole 400-year cycles are stripped from the later operand and
// reported in OverflowYears. Sign is +1 when dt is at or after other.
func (dt DateTime) DeltaNanoseconds(other DateTime) Delta {
	sign := 1
	switch {
	case dt.Year < other.Year:
		sign = -1
	case dt.Year == other.Year:
		a := dt.NanosecondsSinceEpoch()
		b := other.WithCalendar(dt.Cal).NanosecondsSinceEpoch()
		if a < b {
			sign = -1
		}
	}

	lo := min(dt.Year, other.Year)
	span := int64(max(dt.Year, other.Year)) - int64(lo)

	var overflow int64
	if span > maxDeltaYears {
		k := (span - maxDeltaYears + cycleYears - 1) / cycleYears
		overflow = k * cycleYears
	}

	selfYear, otherYear := dt.Year, other.Year
	if overflow > 0 {
		if selfYear > otherYear {
			selfYear -= uint16(overflow)
		} else {
			otherYear -= uint16(overflow)
		}
	}

	selfCal := dt.Cal
	selfCal.MinYear = lo
	otherCal := other.Cal
	otherCal.MinYear = lo

	return Delta{
		SelfNS: selfCal.NanosecondsSinceEpoch(selfYear, dt.Month, dt.Day,
			dt.Hour, dt.Minute, dt.Second, dt.Milli, dt.Micro, dt.Nano),
		OtherNS: otherCal.NanosecondsSinceEpoch(otherYear, other.Month, other.Day,
			other.Hour, other.Minute, other.Second, other.Milli, other.Micro, other.Nano),
		OverflowYears: overflow,
		Sign:          sign,
	}
}

// nsPerCycle is the exact nanosecond length of a 400-year cycle.
var nsPerCycle = decimal.New(cycleDays*86400, 9)

func decimalFromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

// Decimal reconstructs the exact signed nanosecond distance, including
// any stripped 400-year cycles.
func (d Delta) Decimal() decimal.Decimal {
	later, earlier := d.SelfNS, d.OtherNS
	if d.Sign < 0 {
		later, earlier = d.OtherNS, d.SelfNS
	}

	diff := decimalFromUint64(later).Sub(decimalFromUint64(earlier))
	if d.OverflowYears != 0 {
		cycles := decimal.NewFromInt(d.OverflowYears / cycleYears)
		diff = diff.Add(cycles.Mul(nsPerCycle))
	}
	if d.Sign < 0 {
		diff = diff.Neg()
	}
	return diff
}
