package kafka

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/houseoffoodsin/HOFBusiness/internal/config"
	domain "github.com/houseoffoodsin/HOFBusiness/internal/domain/analytics"
	"github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/encoding/avro"
	"github.com/houseoffoodsin/HOFBusiness/pkg/logger"
)

// DayRecomputer rebuilds the daily analytics record for the calendar day
// containing date.
type DayRecomputer interface {
	RecomputeDay(ctx context.Context, date time.Time) (*domain.DailyAnalytics, error)
}

// OrderEventConsumer drives the analytics pipeline: each consumed order event
// triggers a recompute of the affected day. Recomputation is idempotent, so
// at-least-once delivery and redeliveries after rebalances are harmless.
type OrderEventConsumer struct {
	reader  *kafkago.Reader
	codec   *avro.Codec
	handler DayRecomputer
	loc     *time.Location
	log     logger.Logger
}

func NewOrderEventConsumer(cfg config.KafkaConfig, handler DayRecomputer, loc *time.Location, log logger.Logger) (*OrderEventConsumer, error) {
	codec, err := avro.NewCodec(avro.OrderEventSchema)
	if err != nil {
		return nil, err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.OrderTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &OrderEventConsumer{
		reader:  reader,
		codec:   codec,
		handler: handler,
		loc:     loc,
		log:     log,
	}, nil
}

// Start consumes until ctx is cancelled or the reader fails. Malformed
// records are logged and skipped; a failed recompute is logged and retried on
// the next event for the same day.
func (c *OrderEventConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		native, err := c.codec.DecodeNative(msg.Value)
		if err != nil {
			c.log.Error("skipping undecodable record",
				logger.Int("offset", int(msg.Offset)),
				logger.Error(err),
			)
			continue
		}

		event, err := avro.OrderEventFromNative(native)
		if err != nil {
			c.log.Error("skipping malformed order event",
				logger.Int("offset", int(msg.Offset)),
				logger.Error(err),
			)
			continue
		}

		day := event.Order.OrderDate.In(c.loc)
		if _, err := c.handler.RecomputeDay(ctx, day); err != nil {
			c.log.Error("recompute day failed",
				logger.String("event_type", event.EventType),
				logger.String("order_id", event.Order.ID),
				logger.Error(err),
			)
			continue
		}

		c.log.Info("order event processed",
			logger.String("event_type", event.EventType),
			logger.String("order_id", event.Order.ID),
		)
	}
}

func (c *OrderEventConsumer) Close() {
	_ = c.reader.Close()
}
