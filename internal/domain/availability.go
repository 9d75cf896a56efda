package domain

// DayAvailability is the answer of the daily availability query.
// AvailableTimes is always a subset of PossibleTimes.
type DayAvailability struct {
	PossibleTimes  []int `json:"possibleTimes"`
	AvailableTimes []int `json:"availableTimes"`
}

func EmptyDayAvailability() *DayAvailability {
	return &DayAvailability{
		PossibleTimes:  []int{},
		AvailableTimes: []int{},
	}
}

// MonthBlackout is the answer of the monthly blocked dates query.
type MonthBlackout struct {
	BlockedWeekDays []int `json:"blockedWeekDays"`
	BlockedDates    []int `json:"blockedDates"`
}
