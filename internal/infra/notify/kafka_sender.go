package notify

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment-engine/internal/pkg/clock"
	"fulfillment-engine/internal/pkg/config"
	"fulfillment-engine/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the sender needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Message struct {
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}

// KafkaSender publishes notifications as JSON keyed by recipient, so messages
// for one recipient stay ordered within a partition.
type KafkaSender struct {
	writer MessageWriter
	clock  clock.Clock
}

func NewKafkaWriter(cfg config.NotifierConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

func NewKafkaSender(writer MessageWriter, clk clock.Clock) *KafkaSender {
	return &KafkaSender{writer: writer, clock: clk}
}

func (s *KafkaSender) Notify(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(Message{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		SentAt:    s.clock.Now(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}

	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recipient),
		Value: payload,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish notification")
	}
	return nil
}

func (s *KafkaSender) Close() error {
	return s.writer.Close()
}
