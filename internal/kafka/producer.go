package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

const (
	EventFlightsSearched     = "flights_searched"
	EventFlightViewed        = "flight_viewed"
	EventAvailabilityChecked = "availability_checked"
	EventAirlinesListed      = "airlines_listed"
)

// QueryEvent records one answered query against the flight catalog.
type QueryEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Origin      string    `json:"origin,omitempty"`
	Destination string    `json:"destination,omitempty"`
	MaxPrice    *float64  `json:"max_price,omitempty"`
	FlightID    string    `json:"flight_id,omitempty"`
	ResultCount int       `json:"result_count"`
	Available   *bool     `json:"available,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewQueryEvent(eventType string) QueryEvent {
	return QueryEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
}

// Key partitions events by flight when there is one, otherwise by type.
func (e QueryEvent) Key() string {
	if e.FlightID != "" {
		return e.FlightID
	}
	return e.Type
}

type Producer struct {
	writer *kafka.Writer
	topic  string
	logger zerolog.Logger
}

func NewProducer(brokers []string, topic string, logger zerolog.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
		logger: logger,
	}
}

func (p *Producer) Publish(ctx context.Context, event QueryEvent) error {
	message, err := encodeEvent(p.topic, event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	p.logger.Debug().Str("topic", p.topic).Str("type", event.Type).Str("event_id", event.ID).Msg("query event published")
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

func encodeEvent(topic string, event QueryEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafka.Message{
		Topic: topic,
		Key:   []byte(event.Key()),
		Value: data,
		Time:  event.OccurredAt,
	}, nil
}

// DecodeEvent parses a message written by Producer.
func DecodeEvent(msg kafka.Message) (QueryEvent, error) {
	var event QueryEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return QueryEvent{}, fmt.Errorf("decode query event: %w", err)
	}
	return event, nil
}
