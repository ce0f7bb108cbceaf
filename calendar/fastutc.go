package calendar

// The fast calendar dimensions. Twelve 30-day months cover 360 days;
// the counter decomposition parks the remaining 5 days of each 365-day
// year in month 12, so a day field read back from a counter may exceed
// 30 there.
const (
	fastDaysPerYear  = 365
	fastDaysPerMonth = 30
)

// 1970-01-01 was a Thursday (Monday=0 makes that 3).
const fastEpochWeekday = 3

func fastDayOfWeek(c Calendar, year uint16, month, day uint8) uint8 {
	days := uint64(year-c.MinYear)*fastDaysPerYear +
		uint64(month-1)*fastDaysPerMonth + uint64(day-1)
	return uint8((days + fastEpochWeekday) % 7)
}

// FastDecompose splits a whole-day count since the fast epoch into
// (year, month, day). Month 12 absorbs the 5 days each year has beyond
// the twelve 30-day months.
func FastDecompose(c Calendar, days uint64) (uint16, uint8, uint8) {
	year := c.MinYear + uint16(days/fastDaysPerYear)
	doy := days % fastDaysPerYear
	month := uint8(doy/fastDaysPerMonth) + 1
	if month > 12 {
		month = 12
	}
	day := uint8(doy-uint64(month-1)*fastDaysPerMonth) + 1
	return year, month, day
}
