// README: Best-effort trip event publisher backed by Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"mishwar/internal/modules/trip"
)

// TripEvent is the wire shape of a status-change record.
type TripEvent struct {
	TripID     string    `json:"trip_id"`
	Code       string    `json:"code"`
	ClientID   string    `json:"client_id"`
	DriverID   string    `json:"driver_id,omitempty"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaPublisher implements trip.Publisher. Publishing happens after the
// transition has committed, so failures are logged and dropped, never
// propagated back into the request.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    *logrus.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *logrus.Logger) *KafkaPublisher {
	w := kafka.NewWriter(kafka.WriterConfig{Brokers: brokers, Topic: topic, Balancer: &kafka.LeastBytes{}})
	return &KafkaPublisher{writer: w, log: log}
}

func (p *KafkaPublisher) TripStatusChanged(ctx context.Context, t *trip.Trip, from trip.Status) {
	ev := TripEvent{
		TripID:     string(t.ID),
		Code:       t.Code,
		ClientID:   string(t.ClientID),
		FromStatus: string(from),
		ToStatus:   string(t.Status),
		OccurredAt: time.Now().UTC(),
	}
	if t.DriverID != nil {
		ev.DriverID = string(*t.DriverID)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	b, _ := json.Marshal(ev)
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(ev.TripID), Value: b}); err != nil {
		p.log.WithError(err).WithField("trip", ev.TripID).Warn("trip event publish failed")
	}
}

func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
