package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// KafkaNotifier publishes appointment events to Kafka, one topic per event
// type, keyed by appointment id so events for the same appointment stay
// ordered within a partition.
type KafkaNotifier struct {
	writer *kafka.Writer
	log    *slog.Logger
}

type eventPayload struct {
	EventID       string    `json:"event_id"`
	AppointmentID string    `json:"appointment_id"`
	EventType     string    `json:"event_type"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewKafkaNotifier(brokers []string, log *slog.Logger) *KafkaNotifier {
	if log == nil {
		log = slog.Default()
	}
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Balancer: &kafka.Hash{},
	})
	return &KafkaNotifier{
		writer: writer,
		log:    log.With(slog.String("component", "notify.kafka")),
	}
}

func (n *KafkaNotifier) AppointmentEvent(ctx context.Context, appointmentID uuid.UUID, event EventType) error {
	eventID, err := uuid.NewV7()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(eventPayload{
		EventID:       eventID.String(),
		AppointmentID: appointmentID.String(),
		EventType:     string(event),
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Topic: string(event),
		Key:   []byte(appointmentID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(eventID.String())},
			{Key: "event_type", Value: []byte(event)},
		},
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		n.log.Error("appointment event publish failed",
			slog.Any("err", err),
			slog.String("appointment_id", appointmentID.String()),
			slog.String("event_type", string(event)),
		)
		return err
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
