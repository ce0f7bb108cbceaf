package calendar

// Leap seconds are modeled as a single constant: 27 of them exist for
// any date in or after 1972. The surrounding epoch arithmetic assumes
// a constant correction per date, not a historical lookup.
const (
	leapSecondFloorYear = 1972
	leapSecondTotal     = 27
)

var gregorianMonthDays = [13]uint8{
	0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
}

var gregorianDaysBefore = [13]uint16{
	0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334,
}

func gregorianIsLeap(year uint16) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func gregorianDaysInMonth(year uint16, month uint8) uint8 {
	if month == 2 && gregorianIsLeap(year) {
		return 29
	}
	return gregorianMonthDays[month]
}

// gregorianDaysBeforeMonth returns the days preceding the month in a
// non-leap year. The current year's leap day is accounted for by the
// leap-day counter, not here.
func gregorianDaysBeforeMonth(month uint8) uint16 {
	return gregorianDaysBefore[month]
}

func gregorianDayOfYear(year uint16, month, day uint8) uint16 {
	doy := gregorianDaysBefore[month] + uint16(day)
	if month > 2 && gregorianIsLeap(year) {
		doy++
	}
	return doy
}

// gregorianLeapsBefore counts leap years in [1, year).
func gregorianLeapsBefore(year uint16) uint32 {
	y := uint32(year) - 1
	return y/4 - y/100 + y/400
}

// gregorianLeapDays counts leap days between the epoch year and the
// given (year, month), including the current year's February 29 once
// March is reached.
func gregorianLeapDays(epochYear, year uint16, month uint8) uint32 {
	days := gregorianLeapsBefore(year) - gregorianLeapsBefore(epochYear)
	if month > 2 && gregorianIsLeap(year) {
		days++
	}
	return days
}

// gregorianDaysBeforeYear returns the days between year 1 January 1
// and the given year's January 1.
func gregorianDaysBeforeYear(year uint16) uint64 {
	y := uint64(year) - 1
	return y*365 + y/4 - y/100 + y/400
}

// gregorianFromDays decomposes a whole-day count since the epoch year
// back into (year, month, day).
func gregorianFromDays(epochYear uint16, days uint64) (uint16, uint8, uint8) {
	abs := days + gregorianDaysBeforeYear(epochYear)

	year := uint16(abs*400/146097) + 1
	for gregorianDaysBeforeYear(year+1) <= abs {
		year++
	}
	for gregorianDaysBeforeYear(year) > abs {
		year--
	}

	doy := uint16(abs-gregorianDaysBeforeYear(year)) + 1
	month := uint8(1)
	for month < 12 && doy > gregorianDayOfYear(year, month, gregorianDaysInMonth(year, month)) {
		month++
	}
	before := gregorianDaysBefore[month]
	if month > 2 && gregorianIsLeap(year) {
		before++
	}
	return year, month, uint8(doy - before)
}

// gregorianDayOfWeek computes the weekday (Monday=0) from the absolute
// day count: days before the year plus the day of the year, corrected
// so that year 1 January 1 lands on Monday.
func gregorianDayOfWeek(year uint16, month, day uint8) uint8 {
	y := uint64(year) - 1
	daysBeforeYear := y*365 + y/4 - y/100 + y/400
	return uint8((daysBeforeYear + uint64(gregorianDayOfYear(year, month, day)) + 6) % 7)
}
