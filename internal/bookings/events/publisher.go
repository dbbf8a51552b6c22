package events

import (
	"context"

	"matchpoint/pkg/kafka"
	"matchpoint/pkg/logger"
	"matchpoint/pkg/model"
)

type EventType string

const (
	BookingCreated   EventType = "booking.created"
	OpponentJoined   EventType = "booking.joined"
	BookingCancelled EventType = "booking.cancelled"
	BookingReopened  EventType = "booking.reopened"
)

const source = "bookings"

// Publisher announces booking lifecycle changes to downstream consumers.
// Publishing is strictly fire-and-forget: it never fails the mutation that
// triggered it.
type Publisher interface {
	Publish(ctx context.Context, eventType EventType, booking *model.Booking)
}

type kafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		log:      log,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, eventType EventType, booking *model.Booking) {
	msg := kafka.NewMessage().
		WithKey(booking.ID).
		WithValue(booking).
		WithEventID("").
		WithEventType(string(eventType)).
		WithSource(source).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
		return
	}

	p.log.Debug("Booking event published",
		"event_type", eventType,
		"booking_id", booking.ID,
	)
}

type nopPublisher struct{}

// NewNopPublisher is wired when no Kafka brokers are configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, EventType, *model.Booking) {}
