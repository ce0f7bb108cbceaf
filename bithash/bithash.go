// Package bithash defines the fixed-width field-packing schemes used to
// store a decomposed date/time tuple inside a single unsigned integer.
//
// Four layouts are provided, one per storage width. Fields are packed
// most-significant-first, with the year in the highest bits, so packed
// values of the same width compare in chronological order when every
// field is within its budget.
//
// 64-bit layout:
//
//	+--------+-------+-----+------+--------+--------+-------+-------+----+
//	| year   | month | day | hour | minute | second | milli | micro | 00 |
//	| 16 b   | 4 b   | 5 b | 5 b  | 6 b    | 6 b    | 10 b  | 10 b  | 2b |
//	+--------+-------+-----+------+--------+--------+-------+-------+----+
//
// 32-bit layout:
//
//	+------+-------+-----+------+--------+--------+
//	| year | month | day | hour | minute | second |
//	| 6 b  | 4 b   | 5 b | 5 b  | 6 b    | 6 b    |
//	+------+-------+-----+------+--------+--------+
//
// 16-bit layout:
//
//	+------+-------+-----+------+
//	| year | month | day | hour |
//	| 2 b  | 4 b   | 5 b | 5 b  |
//	+------+-------+-----+------+
//
// 8-bit layout:
//
//	+-----+------+
//	| day | hour |
//	| 3 b | 5 b  |
//	+-----+------+
//
// Packing is lossy by design: a field value wider than its budget is
// truncated by masking, never rejected. Callers that need exact
// round-trips must pre-validate ranges against the budgets above.
package bithash

// Fields is a decomposed date/time tuple as consumed and produced by
// the packing schemes.
type Fields struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
	Milli  uint16
	Micro  uint16
}

// Bit budget per field, shared by every layout that carries the field.
const (
	yearBits64 = 16
	yearBits32 = 6
	yearBits16 = 2
	monthBits  = 4
	dayBits    = 5
	dayBits8   = 3
	hourBits   = 5
	minuteBits = 6
	secondBits = 6
	milliBits  = 10
	microBits  = 10
)

// Shift of each field from the least significant bit, per layout.
const (
	shift64Micro  = 2
	shift64Milli  = shift64Micro + microBits
	shift64Second = shift64Milli + milliBits
	shift64Minute = shift64Second + secondBits
	shift64Hour   = shift64Minute + minuteBits
	shift64Day    = shift64Hour + hourBits
	shift64Month  = shift64Day + dayBits
	shift64Year   = shift64Month + monthBits

	shift32Minute = secondBits
	shift32Hour   = shift32Minute + minuteBits
	shift32Day    = shift32Hour + hourBits
	shift32Month  = shift32Day + dayBits
	shift32Year   = shift32Month + monthBits

	shift16Day   = hourBits
	shift16Month = shift16Day + dayBits
	shift16Year  = shift16Month + monthBits

	shift8Day = hourBits
)

func mask(bits uint) uint64 { return (1 << bits) - 1 }

// Pack64 packs f into the 64-bit layout. The two lowest bits of the
// result are always zero.
func Pack64(f Fields) uint64 {
	return (uint64(f.Year)&mask(yearBits64))<<shift64Year |
		(uint64(f.Month)&mask(monthBits))<<shift64Month |
		(uint64(f.Day)&mask(dayBits))<<shift64Day |
		(uint64(f.Hour)&mask(hourBits))<<shift64Hour |
		(uint64(f.Minute)&mask(minuteBits))<<shift64Minute |
		(uint64(f.Second)&mask(secondBits))<<shift64Second |
		(uint64(f.Milli)&mask(milliBits))<<shift64Milli |
		(uint64(f.Micro)&mask(microBits))<<shift64Micro
}

// Unpack64 decomposes a 64-bit packed value.
func Unpack64(h uint64) Fields {
	return Fields{
		Year:   uint16(h >> shift64Year & mask(yearBits64)),
		Month:  uint8(h >> shift64Month & mask(monthBits)),
		Day:    uint8(h >> shift64Day & mask(dayBits)),
		Hour:   uint8(h >> shift64Hour & mask(hourBits)),
		Minute: uint8(h >> shift64Minute & mask(minuteBits)),
		Second: uint8(h >> shift64Second & mask(secondBits)),
		Milli:  uint16(h >> shift64Milli & mask(milliBits)),
		Micro:  uint16(h >> shift64Micro & mask(microBits)),
	}
}

// Pack32 packs f into the 32-bit layout. Milli and Micro have no bits
// in this layout and are dropped.
func Pack32(f Fields) uint32 {
	return uint32((uint64(f.Year)&mask(yearBits32))<<shift32Year |
		(uint64(f.Month)&mask(monthBits))<<shift32Month |
		(uint64(f.Day)&mask(dayBits))<<shift32Day |
		(uint64(f.Hour)&mask(hourBits))<<shift32Hour |
		(uint64(f.Minute)&mask(minuteBits))<<shift32Minute |
		uint64(f.Second)&mask(secondBits))
}

// Unpack32 decomposes a 32-bit packed value.
func Unpack32(h uint32) Fields {
	return Fields{
		Year:   uint16(uint64(h) >> shift32Year & mask(yearBits32)),
		Month:  uint8(uint64(h) >> shift32Month & mask(monthBits)),
		Day:    uint8(uint64(h) >> shift32Day & mask(dayBits)),
		Hour:   uint8(uint64(h) >> shift32Hour & mask(hourBits)),
		Minute: uint8(uint64(h) >> shift32Minute & mask(minuteBits)),
		Second: uint8(uint64(h) & mask(secondBits)),
	}
}

// Pack16 packs f into the 16-bit layout, which carries the date down
// to the hour only.
func Pack16(f Fields) uint16 {
	return uint16((uint64(f.Year)&mask(yearBits16))<<shift16Year |
		(uint64(f.Month)&mask(monthBits))<<shift16Month |
		(uint64(f.Day)&mask(dayBits))<<shift16Day |
		uint64(f.Hour)&mask(hourBits))
}

// Unpack16 decomposes a 16-bit packed value.
func Unpack16(h uint16) Fields {
	return Fields{
		Year:  uint16(uint64(h) >> shift16Year & mask(yearBits16)),
		Month: uint8(uint64(h) >> shift16Month & mask(monthBits)),
		Day:   uint8(uint64(h) >> shift16Day & mask(dayBits)),
		Hour:  uint8(uint64(h) & mask(hourBits)),
	}
}

// Pack8 packs f into the 8-bit layout, which carries the day of month
// modulo 8 and the hour only.
func Pack8(f Fields) uint8 {
	return uint8((uint64(f.Day)&mask(dayBits8))<<shift8Day |
		uint64(f.Hour)&mask(hourBits))
}

// Unpack8 decomposes an 8-bit packed value.
func Unpack8(h uint8) Fields {
	return Fields{
		Day:  uint8(uint64(h) >> shift8Day & mask(dayBits8)),
		Hour: uint8(uint64(h) & mask(hourBits)),
	}
}
