package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"venuehub/internal/ports/output"
	"venuehub/pkg/slot"
)

var _ output.BookingNotifier = (*Publisher)(nil)

// Publisher sends booking events to a RabbitMQ topic exchange, routed by event kind.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// bookingMessage is the JSON body of booking events.
type bookingMessage struct {
	BookingID uint   `json:"booking_id"`
	UserID    string `json:"user_id"`
	VenueID   uint   `json:"venue_id"`
	VenueName string `json:"venue_name,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}

func newBookingMessage(event output.BookingEvent) bookingMessage {
	b := event.Booking
	msg := bookingMessage{
		BookingID: b.ID,
		UserID:    b.UserID,
		VenueID:   b.VenueID,
		Date:      b.Date.Format(slot.DateLayout),
		Time:      b.Time.String(),
		Status:    b.Status,
	}
	if event.Venue != nil {
		msg.VenueName = event.Venue.Name
	}
	return msg
}

func (p *Publisher) Notify(ctx context.Context, event output.BookingEvent) error {
	return p.PublishJSON(ctx, event.Kind, newBookingMessage(event))
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         b,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
