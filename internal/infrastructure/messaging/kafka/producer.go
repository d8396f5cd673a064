package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/houseoffoodsin/HOFBusiness/internal/config"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
	"github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/encoding/avro"
	"github.com/houseoffoodsin/HOFBusiness/pkg/logger"
)

// OrderEventProducer publishes Avro order events, one record per state
// change. The message key is a fresh event id, not the order id: consumers
// recompute whole days, so per-order ordering is not needed and random keys
// spread load across partitions.
type OrderEventProducer struct {
	client *kgo.Client
	codec  *avro.Codec
	topic  string
	log    logger.Logger
}

func NewOrderEventProducer(cfg config.KafkaConfig, log logger.Logger) (*OrderEventProducer, error) {
	codec, err := avro.NewCodec(avro.OrderEventSchema)
	if err != nil {
		return nil, err
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.OrderTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer ready",
		logger.String("topic", cfg.OrderTopic),
		logger.Int("brokers", len(cfg.Brokers)),
	)

	return &OrderEventProducer{
		client: client,
		codec:  codec,
		topic:  cfg.OrderTopic,
		log:    log,
	}, nil
}

func (p *OrderEventProducer) PublishOrderEvent(ctx context.Context, eventType string, o *order.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	event := avro.OrderEvent{
		EventType:  eventType,
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		Order:      *o,
	}

	payload, err := p.codec.EncodeNative(avro.OrderEventToNative(event))
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(event.EventID),
		Value:     payload,
		Timestamp: event.OccurredAt,
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	p.log.Debug("order event published",
		logger.String("event_type", eventType),
		logger.String("order_id", o.ID),
	)
	return nil
}

func (p *OrderEventProducer) Close() {
	p.log.Info("closing kafka producer", logger.String("topic", p.topic))
	p.client.Close()
}
