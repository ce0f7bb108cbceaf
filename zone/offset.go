// Package zone provides UTC offset resolution for civil timestamps: a
// compact bit-packed representation of zone records (static offsets
// and symbolic DST transition rules) and the evaluator that resolves a
// civil instant to the offset in force at that instant.
//
// A zone record is at most 32 bits: a standalone Offset is one byte, a
// DST zone packs two 12-bit transition rules and an 8-bit base offset.
//
// See also:
//
//   - Daylight saving time by country:
//     https://en.wikipedia.org/wiki/Daylight_saving_time_by_country
package zone

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Offset is a packed UTC offset:
//
//	+------+------+-------------+-------+
//	| sign | hour | minute code | weird |
//	| 1 b  | 4 b  | 2 b         | 1 b   |
//	+------+------+-------------+-------+
//
// The sign bit is set for positive offsets. The minute code maps to
// {0, 30, 45} minutes. The weird flag marks the two named zones whose
// DST delta is not one hour (Lord Howe Island, Troll station); the
// stored standard minute disambiguates which of the two applies.
type Offset uint8

const (
	offsetSignShift   = 7
	offsetHourShift   = 3
	offsetMinuteShift = 1
	offsetWeirdBit    = 1

	offsetHourMask   = 0xf
	offsetMinuteMask = 0x3
)

// Offset minute codes.
const (
	minuteCode0 = iota
	minuteCode30
	minuteCode45
)

var (
	ErrOffsetSign   = fmt.Errorf("offset sign must be +1 or -1")
	ErrOffsetHour   = fmt.Errorf("offset hour magnitude must be below 16")
	ErrOffsetMinute = fmt.Errorf("offset minute must be one of 0, 30, 45")
)

// NewOffset packs a UTC offset. Sign is +1 or -1, hour must be below
// 16, minute one of {0, 30, 45}. Weird marks an irregular-DST zone.
// All violations are reported together.
func NewOffset(sign int8, hour, minute uint8, weird bool) (Offset, error) {
	var errs error
	if sign != 1 && sign != -1 {
		errs = multierror.Append(errs, ErrOffsetSign)
	}
	if hour > offsetHourMask {
		errs = multierror.Append(errs, ErrOffsetHour)
	}
	code := uint8(minuteCode0)
	switch minute {
	case 0:
	case 30:
		code = minuteCode30
	case 45:
		code = minuteCode45
	default:
		errs = multierror.Append(errs, ErrOffsetMinute)
	}
	if errs != nil {
		return 0, errs
	}

	var o Offset
	if sign > 0 {
		o |= 1 << offsetSignShift
	}
	o |= Offset(hour) << offsetHourShift
	o |= Offset(code) << offsetMinuteShift
	if weird {
		o |= offsetWeirdBit
	}
	return o, nil
}

// MustOffset is NewOffset for statically known arguments; it panics on
// a validation error.
func MustOffset(sign int8, hour, minute uint8, weird bool) Offset {
	o, err := NewOffset(sign, hour, minute, weird)
	if err != nil {
		panic(err)
	}
	return o
}

// OffsetFromByte reinterprets a raw packed byte as an Offset.
func OffsetFromByte(b uint8) Offset { return Offset(b) }

// Byte returns the raw packed byte.
func (o Offset) Byte() uint8 { return uint8(o) }

// Sign returns +1 or -1.
func (o Offset) Sign() int8 {
	if o>>offsetSignShift&1 == 1 {
		return 1
	}
	return -1
}

// Hour returns the offset hour magnitude, 0..15.
func (o Offset) Hour() uint8 { return uint8(o) >> offsetHourShift & offsetHourMask }

// Minute returns the offset minutes: 0, 30 or 45.
func (o Offset) Minute() uint8 {
	switch uint8(o) >> offsetMinuteShift & offsetMinuteMask {
	case minuteCode30:
		return 30
	case minuteCode45:
		return 45
	default:
		return 0
	}
}

// Weird reports whether the zone's DST delta is irregular.
func (o Offset) Weird() bool { return o&offsetWeirdBit != 0 }

// Minutes returns the signed total offset in minutes.
func (o Offset) Minutes() int {
	m := int(o.Hour())*60 + int(o.Minute())
	return m * int(o.Sign())
}

func (o Offset) String() string {
	sign := "-"
	if o.Sign() > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%02d:%02d", sign, o.Hour(), o.Minute())
}

// dst returns the offset in force while DST is active for a zone whose
// standard offset is o. The regular delta is one hour; the two
// irregular zones add 30 minutes (Lord Howe, standard minute non-zero)
// or two hours (Troll, standard minute zero).
func (o Offset) dst() Offset {
	if o.Weird() {
		if o.Minute() != 0 {
			// Lord Howe Island: +10:30 standard, +11:00 daylight.
			return MustOffset(o.Sign(), o.Hour()+1, 0, true)
		}
		// Troll station: +00:00 standard, +02:00 daylight.
		return MustOffset(o.Sign(), o.Hour()+2, o.Minute(), true)
	}
	return MustOffset(o.Sign(), o.Hour()+1, o.Minute(), false)
}
