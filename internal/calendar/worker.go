package calendar

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/booking-page/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

type Outcome int

const (
	Ack Outcome = iota
	Reject
	Requeue
)

type Sender interface {
	DialAndSend(messages ...*mail.Msg) error
}

// Worker turns calendar events into iMIP invitations sent to the host's calendar address.
type Worker struct {
	sender    Sender
	from      string
	productID string
	now       func() time.Time
}

func NewWorker(sender Sender, from, productID string) *Worker {
	return &Worker{
		sender:    sender,
		from:      from,
		productID: productID,
		now:       time.Now,
	}
}

func (w *Worker) NewInviteMessage(event *domain.CalendarEvent) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(w.from); err != nil {
		return nil, err
	}
	if err := msg.To(event.CalendarEmail); err != nil {
		return nil, err
	}
	msg.Subject(Summary(event) + " - " + event.Start.UTC().Format(time.RFC1123))
	msg.SetBodyString(mail.TypeTextPlain, Summary(event)+" ("+event.AttendeeEmail+")")
	msg.AddAlternativeString(mail.ContentType("text/calendar; method=REQUEST"), BuildInvite(event, w.productID, w.now()))

	return msg, nil
}

// Handle processes one delivery body. A message that can never succeed is rejected,
// a failed send is requeued.
func (w *Worker) Handle(body []byte) Outcome {
	event := &domain.CalendarEvent{}
	if err := json.Unmarshal(body, event); err != nil {
		slog.Error("calendar event is malformed", "error", err)
		return Reject
	}

	msg, err := w.NewInviteMessage(event)
	if err != nil {
		slog.Error("cannot build calendar invitation", "bookingID", event.BookingID, "error", err)
		return Reject
	}

	if err := w.sender.DialAndSend(msg); err != nil {
		slog.Error("cannot send calendar invitation", "bookingID", event.BookingID, "error", err)
		return Requeue
	}

	slog.Info("calendar invitation sent", "bookingID", event.BookingID, "to", event.CalendarEmail)
	return Ack
}
