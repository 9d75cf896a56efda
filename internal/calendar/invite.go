package calendar

import (
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/booking-page/backend/internal/domain"
)

func Summary(event *domain.CalendarEvent) string {
	return "Call with " + event.AttendeeName
}

// BuildInvite renders the event as an iCalendar REQUEST so the host calendar adds it on receipt.
// Long lines are folded and text values escaped by the serializer.
func BuildInvite(event *domain.CalendarEvent, productID string, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ics.MethodRequest)

	vevent := cal.AddEvent(event.BookingID)
	vevent.SetDtStampTime(stamp)
	vevent.SetStartAt(event.Start)
	vevent.SetEndAt(event.End)
	vevent.SetSummary(Summary(event))
	if event.Observations != "" {
		vevent.SetDescription(event.Observations)
	}
	vevent.SetOrganizer("mailto:"+event.HostEmail, ics.WithCN(event.HostName))
	vevent.AddAttendee("mailto:"+event.AttendeeEmail,
		ics.WithCN(event.AttendeeName),
		ics.ParticipationRoleReqParticipant,
		ics.ParticipationStatusNeedsAction,
		ics.WithRSVP(true),
	)
	vevent.SetStatus(ics.ObjectStatusConfirmed)

	return cal.Serialize()
}
