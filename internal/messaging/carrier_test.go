package messaging

import (
	"testing"

	"github.com/segmentio/kafka-go"
)

func TestMessageCarrier(t *testing.T) {
	t.Run("Get returns the header value or empty", func(t *testing.T) {
		msg := &kafka.Message{Headers: []kafka.Header{
			{Key: "traceparent", Value: []byte("00-abc-def-01")},
		}}
		carrier := NewMessageCarrier(msg)

		if got := carrier.Get("traceparent"); got != "00-abc-def-01" {
			t.Fatalf("unexpected value: %s", got)
		}
		if got := carrier.Get("tracestate"); got != "" {
			t.Fatalf("expected empty value for missing key, got %s", got)
		}
	})

	t.Run("Set appends new headers and overwrites existing ones", func(t *testing.T) {
		msg := &kafka.Message{}
		carrier := NewMessageCarrier(msg)

		carrier.Set("traceparent", "00-abc-def-01")
		carrier.Set("tracestate", "vendor=1")
		carrier.Set("traceparent", "00-abc-def-02")

		if len(msg.Headers) != 2 {
			t.Fatalf("expected 2 headers, got %d", len(msg.Headers))
		}
		if got := carrier.Get("traceparent"); got != "00-abc-def-02" {
			t.Fatalf("expected overwritten value, got %s", got)
		}
	})

	t.Run("Keys lists all header keys", func(t *testing.T) {
		msg := &kafka.Message{Headers: []kafka.Header{
			{Key: "traceparent", Value: []byte("00-abc-def-01")},
			{Key: "tracestate", Value: []byte("vendor=1")},
		}}
		carrier := NewMessageCarrier(msg)

		keys := carrier.Keys()
		if len(keys) != 2 || keys[0] != "traceparent" || keys[1] != "tracestate" {
			t.Fatalf("unexpected keys: %v", keys)
		}
	})
}
