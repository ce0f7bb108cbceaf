package civil_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	civil "github.com/civilkit/go-civil"
	"github.com/civilkit/go-civil/calendar"
	"github.com/civilkit/go-civil/zone"
)

func hms(dt civil.DateTime) [6]int {
	return [6]int{int(dt.Year), int(dt.Month), int(dt.Day), int(dt.Hour), int(dt.Minute), int(dt.Second)}
}

func TestNanosecondCascadesToYear(t *testing.T) {
	dt := civil.NewDateTime(2024, 12, 31, 23, 59, 59)

	got := dt.Add(civil.Span{Nano: 1_000_000_000})
	assert.Equal(t, [6]int{2025, 1, 1, 0, 0, 0}, hms(got))
	assert.Equal(t, uint16(0), got.Nano)
}

func TestTimeCarries(t *testing.T) {
	dt := civil.NewDateTime(2024, 2, 28, 23, 0, 0)

	assert.Equal(t, [6]int{2024, 2, 29, 1, 0, 0}, hms(dt.Add(civil.Span{Hours: 2})))
	assert.Equal(t, [6]int{2024, 2, 28, 22, 59, 0}, hms(dt.Subtract(civil.Span{Minutes: 1})))
	assert.Equal(t, [6]int{2024, 3, 1, 23, 0, 0}, hms(dt.Add(civil.Span{Days: 2})))
}

func TestLeapSecondSurvivesNormalization(t *testing.T) {
	dt := civil.NewDateTime(2016, 12, 31, 23, 59, 60)
	assert.Equal(t, [6]int{2016, 12, 31, 23, 59, 60}, hms(dt))

	// A plain :60 that is not a leap second carries into the minute.
	dt = civil.NewDateTime(2016, 11, 30, 23, 59, 60)
	assert.Equal(t, [6]int{2016, 12, 1, 0, 0, 0}, hms(dt))
}

func TestLeapSecondCheckAfterWideCarries(t *testing.T) {
	dt := civil.NewDateTime(1972, 6, 30, 23, 59, 59)

	// A month sum far out of range must not read back as June through
	// truncation; the :60 carries and the date folds afterwards.
	got := dt.Add(civil.Span{Months: 256, Seconds: 1})
	assert.Equal(t, [6]int{1993, 10, 31, 0, 0, 0}, hms(got))

	// The same :60 on the in-range instant is a real leap second.
	assert.Equal(t, [6]int{1972, 6, 30, 23, 59, 60}, hms(dt.Add(civil.Span{Seconds: 1})))
}

func TestToUTCStaticOffset(t *testing.T) {
	plus2 := zone.New("Fixed/Plus2", zone.MustOffset(1, 2, 0, false))
	dt := civil.NewDateTimeIn(2024, 6, 15, 12, 0, 0, 0, 0, 0, plus2, calendar.Default)

	utc := dt.ToUTC()
	assert.Equal(t, [6]int{2024, 6, 15, 10, 0, 0}, hms(utc))
	assert.Equal(t, zone.UTC, utc.TZ)

	back := utc.FromUTC(plus2)
	assert.Equal(t, [6]int{2024, 6, 15, 12, 0, 0}, hms(back))
	assert.Equal(t, plus2, back.TZ)
}

func TestToUTCNegativeOffsetCrossesMidnight(t *testing.T) {
	minus5 := zone.New("Fixed/Minus5", zone.MustOffset(-1, 5, 0, false))
	dt := civil.NewDateTimeIn(2024, 12, 31, 22, 30, 0, 0, 0, 0, minus5, calendar.Default)

	utc := dt.ToUTC()
	assert.Equal(t, [6]int{2025, 1, 1, 3, 30, 0}, hms(utc))
}

func TestToUTCWithDST(t *testing.T) {
	nyc := zone.NewDST("America/New_York", zone.MustOffset(-1, 5, 0, false))

	// July is daylight time, offset -4.
	dt := civil.NewDateTimeIn(2024, 7, 15, 12, 0, 0, 0, 0, 0, nyc, calendar.Default)
	assert.Equal(t, [6]int{2024, 7, 15, 16, 0, 0}, hms(dt.ToUTC()))

	// January is standard time, offset -5.
	dt = civil.NewDateTimeIn(2024, 1, 15, 12, 0, 0, 0, 0, 0, nyc, calendar.Default)
	assert.Equal(t, [6]int{2024, 1, 15, 17, 0, 0}, hms(dt.ToUTC()))
}

func TestDeltaSameDay(t *testing.T) {
	a := civil.NewDateTime(2024, 6, 15, 13, 0, 0)
	b := civil.NewDateTime(2024, 6, 15, 12, 0, 0)

	d := a.DeltaNanoseconds(b)
	require.Equal(t, 1, d.Sign)
	require.EqualValues(t, 0, d.OverflowYears)
	assert.True(t, d.Decimal().Equal(decimal.New(3600, 9)), "got %s", d.Decimal())

	// Antisymmetry.
	r := b.DeltaNanoseconds(a)
	require.Equal(t, -1, r.Sign)
	assert.True(t, r.Decimal().Equal(d.Decimal().Neg()))
}

func TestDeltaSixHundredYears(t *testing.T) {
	a := civil.NewDateTime(2600, 1, 1, 0, 0, 0)
	b := civil.NewDateTime(2000, 1, 1, 0, 0, 0)

	d := a.DeltaNanoseconds(b)
	require.Equal(t, 1, d.Sign)
	require.EqualValues(t, 400, d.OverflowYears)

	// Exact: the day count between the operands times a day of
	// nanoseconds.
	days := calendar.NewGregorianAt(2000).DaysSinceEpoch(2600, 1, 1)
	expected := decimal.New(int64(days)*86400, 9)
	assert.True(t, d.Decimal().Equal(expected), "got %s want %s", d.Decimal(), expected)

	r := b.DeltaNanoseconds(a)
	require.Equal(t, -1, r.Sign)
	assert.True(t, r.Decimal().Equal(expected.Neg()))
}

func TestUnixConversions(t *testing.T) {
	assert.EqualValues(t, 0, civil.NewDateTime(1970, 1, 1, 0, 0, 0).Unix())
	assert.EqualValues(t, 1704067200, civil.NewDateTime(2024, 1, 1, 0, 0, 0).Unix())

	dt := civil.FromUnix(1704067200, 0)
	assert.Equal(t, [6]int{2024, 1, 1, 0, 0, 0}, hms(dt))

	dt = civil.FromUnix(1704067200+3661, 0)
	assert.Equal(t, [6]int{2024, 1, 1, 1, 1, 1}, hms(dt))

	// Negative Unix times land before the epoch.
	dt = civil.FromUnix(-1, 0)
	assert.Equal(t, [6]int{1969, 12, 31, 23, 59, 59}, hms(dt))
}

func TestDateTimeReplace(t *testing.T) {
	dt := civil.NewDateTime(2024, 6, 15, 12, 30, 45)

	require.Equal(t, dt, dt.WithYear(1999).WithYear(dt.Year))
	require.Equal(t, dt, dt.WithTime(0, 0, 0).WithTime(dt.Hour, dt.Minute, dt.Second))

	// Replacing the year of Feb 29 normalizes into March on a
	// non-leap year.
	leap := civil.NewDateTime(2024, 2, 29, 6, 0, 0)
	assert.Equal(t, [6]int{2023, 3, 1, 6, 0, 0}, hms(leap.WithYear(2023)))
}

func TestDateTimeOrdering(t *testing.T) {
	a := civil.NewDateTime(2024, 6, 15, 12, 0, 0)
	b := civil.NewDateTime(2024, 6, 15, 12, 0, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
}
