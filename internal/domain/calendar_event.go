package domain

import "time"

// CalendarEvent is published for every confirmed booking and consumed by the calendar worker.
type CalendarEvent struct {
	BookingID     string    `json:"bookingID"`
	HostName      string    `json:"hostName"`
	HostEmail     string    `json:"hostEmail"`
	CalendarEmail string    `json:"calendarEmail"`
	AttendeeName  string    `json:"attendeeName"`
	AttendeeEmail string    `json:"attendeeEmail"`
	Observations  string    `json:"observations"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
}
