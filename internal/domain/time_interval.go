package domain

// TimeInterval is a user's weekly availability window for one weekday.
// Minutes are counted from midnight, the end is exclusive.
type TimeInterval struct {
	ID          int64 `json:"id"`
	UserID      int64 `json:"-"`
	WeekDay     int   `json:"weekDay"` // 0 = Sunday
	StartMinute int   `json:"startTimeInMinutes"`
	EndMinute   int   `json:"endTimeInMinutes"`
}

func (ti *TimeInterval) StartHour() int {
	return ti.StartMinute / 60
}

func (ti *TimeInterval) EndHour() int {
	return ti.EndMinute / 60
}

// Capacity is the number of one-hour bookings the window can hold.
func (ti *TimeInterval) Capacity() int {
	return ti.EndHour() - ti.StartHour()
}
