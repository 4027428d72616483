package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	TypeBookingCreated   = "booking_created"
	TypeBookingCancelled = "booking_cancelled"
)

// BookingEvent is the wire payload for booking lifecycle notifications.
type BookingEvent struct {
	Type        string    `json:"type"`
	PNR         string    `json:"pnr"`
	FlightID    string    `json:"flight_id"`
	Email       string    `json:"email"`
	SeatsBooked int       `json:"seats_booked"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Producer publishes booking events to Kafka, keyed by PNR so events for
// one booking stay ordered within a partition.
type Producer struct {
	writer *kafka.Writer
	topic  string
	log    *zap.Logger
}

func NewProducer(brokers []string, topic string, log *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
		log:    log.With(zap.String("component", "event_producer")),
	}
}

func (p *Producer) Publish(ctx context.Context, event BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.PNR),
		Value: data,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("write booking event %s for %s: %w", event.Type, event.PNR, err)
	}

	p.log.Debug("Booking event published",
		zap.String("type", event.Type),
		zap.String("pnr", event.PNR),
	)

	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
