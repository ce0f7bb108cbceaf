package civil

import "github.com/google/uuid"

// Time-ordered UUID bridging. Version 7 UUIDs carry Unix milliseconds
// in their first 48 bits; version 1 UUIDs carry a 100-nanosecond
// Gregorian timestamp. Both can seed a DateTime, and any DateTime can
// mint a version 7 UUID at its instant.

// FromUUID extracts the timestamp of a time-ordered UUID as a UTC
// DateTime. Versions other than 1 and 7 carry no timestamp and yield
// (zero, false).
func FromUUID(id uuid.UUID) (DateTime, bool) {
	switch id.Version() {
	case 7:
		ms := int64(id[0])<<40 | int64(id[1])<<32 | int64(id[2])<<24 |
			int64(id[3])<<16 | int64(id[4])<<8 | int64(id[5])
		dt := FromUnix(ms/1000, 0)
		dt.Milli = uint16(ms % 1000)
		return dt, true
	case 1:
		sec, nsec := id.Time().UnixTime()
		return FromUnix(sec, nsec), true
	default:
		return DateTime{}, false
	}
}

// UUID mints a version 7 UUID whose timestamp bits are the
// timestamp's Unix milliseconds; the remaining bits are random.
func (dt DateTime) UUID() uuid.UUID {
	ms := dt.UnixMilli()

	id := uuid.New()
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)
	id[6] = 0x70 | id[6]&0x0f
	id[8] = 0x80 | id[8]&0x3f
	return id
}

// Unix returns the timestamp's Unix seconds, without the leap-second
// correction so that the result matches POSIX time.
func (dt DateTime) Unix() int64 {
	base := dt.Cal.SecondsSinceEpoch(1970, 1, 1, 0, 0, 0)
	at := dt.SecondsSinceEpoch()
	leap := int64(dt.Cal.LeapSecsSinceEpoch(dt.Year, dt.Month, dt.Day)) -
		int64(dt.Cal.LeapSecsSinceEpoch(1970, 1, 1))
	return int64(at) - int64(base) - leap
}

// UnixMilli returns the timestamp's Unix milliseconds.
func (dt DateTime) UnixMilli() int64 {
	return dt.Unix()*1000 + int64(dt.Milli)
}
