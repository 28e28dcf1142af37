// Package kafka mirrors published bulletins to a Kafka topic so downstream
// consumers (archival, analytics) can see exactly what went to the channel.
package kafka

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/weather-net-bot/internal/config"
	kafkago "github.com/segmentio/kafka-go"
)

// Mirror produces one message per bulletin cycle. It is an optional
// secondary sink: failures are logged by the caller and never block the
// channel publish.
type Mirror struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewMirror creates a Kafka producer for the configured mirror topic.
func NewMirror(cfg *config.Config, logger *slog.Logger) *Mirror {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaMirrorTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Mirror{writer: w, logger: logger}
}

// MirrorBulletin publishes the full bulletin text as a single message keyed
// by the cycle timestamp.
func (m *Mirror) MirrorBulletin(ctx context.Context, postedAt time.Time, chunks []string) error {
	if len(chunks) == 0 {
		return nil
	}
	return m.writer.WriteMessages(ctx, buildMessage(postedAt, chunks))
}

func (m *Mirror) Close() error {
	return m.writer.Close()
}

// buildMessage joins the chunks back into one document; the chunk count
// travels as a header so consumers can tell how the bulletin was split.
func buildMessage(postedAt time.Time, chunks []string) kafkago.Message {
	return kafkago.Message{
		Key:   []byte(postedAt.UTC().Format(time.RFC3339)),
		Value: []byte(strings.Join(chunks, "\n")),
		Headers: []kafkago.Header{
			{Key: "chunks", Value: []byte(strconv.Itoa(len(chunks)))},
			{Key: "posted_at", Value: []byte(postedAt.UTC().Format(time.RFC3339))},
		},
	}
}
