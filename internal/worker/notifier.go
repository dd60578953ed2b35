package worker

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"unistay/internal/infra/events"
	"unistay/internal/pkg/clock"
	"unistay/internal/usecase/shared"
)

// Notifier fans booking events out into per-user notification rows.
type Notifier struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewNotifier(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) *Notifier {
	return &Notifier{uow: uow, clock: clk, logger: logger}
}

// Handle processes one event. Malformed or unknown messages are logged
// and skipped so a poison message cannot wedge the consumer group.
func (n *Notifier) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.BookingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		n.logger.Warn("dropping malformed booking event",
			"partition", msg.Partition, "offset", msg.Offset, "error", err)
		return nil
	}

	recipients := recipientsFor(event)
	if len(recipients) == 0 {
		n.logger.Warn("dropping booking event with unknown type",
			"type", event.Type, "booking_id", event.BookingID)
		return nil
	}

	now := n.clock.Now()
	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, userID := range recipients {
			if err := tx.Notifications().Create(ctx, tx.DB(), userID, event.Type, msg.Value, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	n.logger.Info("booking event processed",
		"type", event.Type, "booking_id", event.BookingID, "recipients", len(recipients))
	return nil
}

// recipientsFor picks who should hear about the event: the host learns of
// new requests, the guest of confirmations, and both of cancellations.
func recipientsFor(event events.BookingEvent) []uuid.UUID {
	switch event.Type {
	case events.TypeBookingCreated:
		return []uuid.UUID{event.HostID}
	case events.TypeBookingConfirmed:
		return []uuid.UUID{event.GuestID}
	case events.TypeBookingCancelled:
		return []uuid.UUID{event.GuestID, event.HostID}
	default:
		return nil
	}
}
