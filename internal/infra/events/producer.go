package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"unistay/internal/pkg/config"
	"unistay/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// Publisher is what command handlers depend on. Failures to publish are
// logged, never surfaced: the booking is committed by the time we get here.
type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent)
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(cfg config.KafkaConfig) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.BookingEventsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) PublishBookingEvent(ctx context.Context, event BookingEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal booking event", "type", event.Type, "error", err.Error())
		return
	}

	msg := kafka.Message{
		// Key by booking so all events for one booking land in order
		Key:   []byte(event.BookingID.String()),
		Value: data,
		Time:  event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.Error("failed to publish booking event",
			"type", event.Type,
			"booking_id", event.BookingID.String(),
			"error", err.Error())
	}
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return errs.Wrap(err, "failed to close kafka writer")
	}
	return nil
}

// NopPublisher drops events. Used in tests and when Kafka is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishBookingEvent(context.Context, BookingEvent) {}
