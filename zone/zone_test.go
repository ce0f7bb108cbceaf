package zone_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/civilkit/go-civil/calendar"
	"github.com/civilkit/go-civil/zone"
)

var cal = calendar.NewGregorian()

func TestOffsetPacking(t *testing.T) {
	o, err := zone.NewOffset(-1, 5, 0, false)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), o.Sign())
	assert.Equal(t, uint8(5), o.Hour())
	assert.Equal(t, uint8(0), o.Minute())
	assert.False(t, o.Weird())
	assert.Equal(t, -300, o.Minutes())

	o, err = zone.NewOffset(1, 10, 30, true)
	require.NoError(t, err)
	assert.Equal(t, int8(1), o.Sign())
	assert.Equal(t, uint8(10), o.Hour())
	assert.Equal(t, uint8(30), o.Minute())
	assert.True(t, o.Weird())
	assert.Equal(t, 630, o.Minutes())

	assert.Equal(t, o, zone.OffsetFromByte(o.Byte()))

	o, err = zone.NewOffset(1, 5, 45, false)
	require.NoError(t, err)
	assert.Equal(t, uint8(45), o.Minute())
	assert.Equal(t, "+05:45", o.String())
}

func TestOffsetValidation(t *testing.T) {
	_, err := zone.NewOffset(0, 5, 0, false)
	assert.ErrorIs(t, err, zone.ErrOffsetSign)

	_, err = zone.NewOffset(1, 16, 0, false)
	assert.ErrorIs(t, err, zone.ErrOffsetHour)

	_, err = zone.NewOffset(1, 5, 15, false)
	assert.ErrorIs(t, err, zone.ErrOffsetMinute)

	// All violations are reported together.
	_, err = zone.NewOffset(2, 20, 7, false)
	assert.ErrorIs(t, err, zone.ErrOffsetSign)
	assert.ErrorIs(t, err, zone.ErrOffsetHour)
	assert.ErrorIs(t, err, zone.ErrOffsetMinute)
}

func TestTransitionRulePacking(t *testing.T) {
	r, err := zone.NewTransitionRule(3, 6, false, true, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), r.Month())
	assert.Equal(t, uint8(6), r.DayOfWeek())
	assert.False(t, r.FromMonthEnd())
	assert.True(t, r.Second())
	assert.Equal(t, uint8(2), r.Hour())

	r, err = zone.NewTransitionRule(10, 0, true, false, 23)
	require.NoError(t, err)
	assert.Equal(t, uint8(10), r.Month())
	assert.Equal(t, uint8(0), r.DayOfWeek())
	assert.True(t, r.FromMonthEnd())
	assert.False(t, r.Second())
	assert.Equal(t, uint8(23), r.Hour())
}

func TestTransitionRuleValidation(t *testing.T) {
	_, err := zone.NewTransitionRule(0, 6, false, false, 2)
	assert.ErrorIs(t, err, zone.ErrRuleMonth)

	_, err = zone.NewTransitionRule(13, 6, false, false, 2)
	assert.ErrorIs(t, err, zone.ErrRuleMonth)

	_, err = zone.NewTransitionRule(3, 7, false, false, 2)
	assert.ErrorIs(t, err, zone.ErrRuleDow)

	_, err = zone.NewTransitionRule(3, 6, false, false, 12)
	assert.ErrorIs(t, err, zone.ErrRuleHour)
}

func TestDstZoneRoundTrip(t *testing.T) {
	start := zone.MustTransitionRule(3, 6, false, true, 2)
	end := zone.MustTransitionRule(11, 6, false, false, 2)
	std := zone.MustOffset(-1, 5, 0, false)

	z := zone.NewDstZone(start, end, std)
	assert.Equal(t, start, z.Start())
	assert.Equal(t, end, z.End())
	assert.Equal(t, std, z.Std())
	assert.Equal(t, z, zone.DstZoneFromUint32(z.Uint32()))
}

func TestOffsetAtNoDST(t *testing.T) {
	tz := zone.New("Fixed/Plus9", zone.MustOffset(1, 9, 0, false))

	for _, month := range []uint8{1, 4, 7, 10} {
		o := tz.OffsetAt(cal, 2024, month, 15, 12, 0, 0)
		assert.Equal(t, 540, o.Minutes(), "month %d", month)
	}
}

func TestOffsetAtUnknownZoneFallsBack(t *testing.T) {
	std := zone.MustOffset(1, 3, 0, false)
	tz := zone.NewDST("No/Such_Zone", std)

	assert.Equal(t, std, tz.OffsetAt(cal, 2024, 7, 1, 0, 0, 0))
}

func TestOffsetAtNorthernHemisphere(t *testing.T) {
	tz := zone.NewDST("America/New_York", zone.MustOffset(-1, 5, 0, false))

	// Deep winter and deep summer.
	assert.Equal(t, -300, tz.OffsetAt(cal, 2024, 1, 15, 12, 0, 0).Minutes())
	assert.Equal(t, -240, tz.OffsetAt(cal, 2024, 7, 15, 12, 0, 0).Minutes())

	// Spring forward: second Sunday of March 2024 is the 10th.
	assert.Equal(t, -300, tz.OffsetAt(cal, 2024, 3, 10, 1, 59, 0).Minutes())
	assert.Equal(t, -240, tz.OffsetAt(cal, 2024, 3, 10, 2, 0, 0).Minutes())
	assert.Equal(t, -300, tz.OffsetAt(cal, 2024, 3, 9, 12, 0, 0).Minutes())
	assert.Equal(t, -240, tz.OffsetAt(cal, 2024, 3, 11, 12, 0, 0).Minutes())

	// Fall back: first Sunday of November 2024 is the 3rd.
	assert.Equal(t, -240, tz.OffsetAt(cal, 2024, 11, 3, 1, 59, 0).Minutes())
	assert.Equal(t, -300, tz.OffsetAt(cal, 2024, 11, 3, 2, 0, 0).Minutes())
	assert.Equal(t, -240, tz.OffsetAt(cal, 2024, 11, 2, 12, 0, 0).Minutes())
	assert.Equal(t, -300, tz.OffsetAt(cal, 2024, 11, 4, 12, 0, 0).Minutes())
}

func TestOffsetAtLastSundayRule(t *testing.T) {
	tz := zone.NewDST("Europe/Berlin", zone.MustOffset(1, 1, 0, false))

	// Last Sunday of March 2024 is the 31st.
	assert.Equal(t, 60, tz.OffsetAt(cal, 2024, 3, 31, 1, 59, 0).Minutes())
	assert.Equal(t, 120, tz.OffsetAt(cal, 2024, 3, 31, 2, 0, 0).Minutes())

	// Last Sunday of October 2024 is the 27th.
	assert.Equal(t, 120, tz.OffsetAt(cal, 2024, 10, 27, 2, 59, 0).Minutes())
	assert.Equal(t, 60, tz.OffsetAt(cal, 2024, 10, 27, 3, 0, 0).Minutes())
}

func TestOffsetAtSouthernHemisphere(t *testing.T) {
	tz := zone.NewDST("Australia/Sydney", zone.MustOffset(1, 10, 0, false))

	// Southern summer spans the year boundary.
	assert.Equal(t, 660, tz.OffsetAt(cal, 2024, 1, 15, 12, 0, 0).Minutes())
	assert.Equal(t, 660, tz.OffsetAt(cal, 2024, 12, 15, 12, 0, 0).Minutes())
	assert.Equal(t, 600, tz.OffsetAt(cal, 2024, 7, 15, 12, 0, 0).Minutes())

	// DST starts first Sunday of October 2024 (the 6th) at 02:00.
	assert.Equal(t, 600, tz.OffsetAt(cal, 2024, 10, 6, 1, 59, 0).Minutes())
	assert.Equal(t, 660, tz.OffsetAt(cal, 2024, 10, 6, 2, 0, 0).Minutes())

	// DST ends first Sunday of April 2024 (the 7th) at 03:00.
	assert.Equal(t, 660, tz.OffsetAt(cal, 2024, 4, 7, 2, 59, 0).Minutes())
	assert.Equal(t, 600, tz.OffsetAt(cal, 2024, 4, 7, 3, 0, 0).Minutes())
}

func TestOffsetAtLordHowe(t *testing.T) {
	tz := zone.NewDST("Australia/Lord_Howe", zone.MustOffset(1, 10, 30, true))

	// Daylight adds 30 minutes, not an hour.
	assert.Equal(t, 630, tz.OffsetAt(cal, 2024, 7, 15, 12, 0, 0).Minutes())
	assert.Equal(t, 660, tz.OffsetAt(cal, 2024, 1, 15, 12, 0, 0).Minutes())
}

func TestOffsetAtTroll(t *testing.T) {
	tz := zone.NewDST("Antarctica/Troll", zone.MustOffset(1, 0, 0, true))

	// Daylight adds two hours.
	assert.Equal(t, 0, tz.OffsetAt(cal, 2024, 1, 15, 12, 0, 0).Minutes())
	assert.Equal(t, 120, tz.OffsetAt(cal, 2024, 7, 15, 12, 0, 0).Minutes())
}

func TestRecordMsgpackRoundTrip(t *testing.T) {
	rec := zone.Record{
		Std: zone.MustOffset(-1, 5, 0, false),
		DST: true,
		Zone: zone.NewDstZone(
			zone.MustTransitionRule(3, 6, false, true, 2),
			zone.MustTransitionRule(11, 6, false, false, 2),
			zone.MustOffset(-1, 5, 0, false),
		),
	}

	buf, err := msgpack.Marshal(rec)
	require.NoError(t, err)

	var got zone.Record
	require.NoError(t, msgpack.Unmarshal(buf, &got))
	require.Equal(t, rec, got)
}

func TestStoreFileRoundTrip(t *testing.T) {
	store := zone.Builtin()
	path := filepath.Join(t.TempDir(), "zones.mp")

	require.NoError(t, store.SaveFile(path))

	got, err := zone.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, store, got)
}

func TestPopulateIsWriteOnce(t *testing.T) {
	extra := zone.MustOffset(1, 4, 30, false)
	store := zone.MemStore{"Test/Custom": {Std: extra}}

	first := zone.Populate(store, "Test/Custom")
	second := zone.Populate(store, "Test/Custom")
	assert.False(t, second)

	if first {
		rec, ok := zone.Lookup("Test/Custom")
		require.True(t, ok)
		assert.Equal(t, extra, rec.Std)
	}

	// Built-in records stay reachable behind the cache.
	_, ok := zone.Lookup("America/New_York")
	assert.True(t, ok)
}
