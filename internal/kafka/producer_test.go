package kafka

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryEvent(t *testing.T) {
	first := NewQueryEvent(EventFlightsSearched)
	second := NewQueryEvent(EventFlightsSearched)

	assert.Equal(t, EventFlightsSearched, first.Type)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.OccurredAt.IsZero())
}

func TestQueryEvent_Key(t *testing.T) {
	event := NewQueryEvent(EventFlightViewed)
	event.FlightID = "FL001"
	assert.Equal(t, "FL001", event.Key())

	assert.Equal(t, EventAirlinesListed, NewQueryEvent(EventAirlinesListed).Key())
}

func TestEncodeDecodeEvent(t *testing.T) {
	maxPrice := 300.0
	available := false
	event := NewQueryEvent(EventFlightsSearched)
	event.Origin = "NYC"
	event.MaxPrice = &maxPrice
	event.ResultCount = 2
	event.Available = &available

	msg, err := encodeEvent("flight-queries", event)
	require.NoError(t, err)
	assert.Equal(t, "flight-queries", msg.Topic)
	assert.Equal(t, []byte(EventFlightsSearched), msg.Key)
	assert.NotContains(t, string(msg.Value), "destination")

	decoded, err := DecodeEvent(msg)
	require.NoError(t, err)
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "NYC", decoded.Origin)
	assert.Equal(t, 300.0, *decoded.MaxPrice)
	assert.Equal(t, 2, decoded.ResultCount)
	assert.False(t, *decoded.Available)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestDecodeEvent_Invalid(t *testing.T) {
	_, err := DecodeEvent(kafka.Message{Value: []byte("not json")})
	assert.Error(t, err)
}

func TestProducer_Close(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "flight-queries", zerolog.Nop())
	assert.NoError(t, p.Close())

	var c *Consumer
	assert.NoError(t, c.Close())
}
