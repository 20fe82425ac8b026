package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"visitorbadge/internal/config"
	"visitorbadge/internal/model"
	"visitorbadge/internal/repository"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog/log"
)

// HitHandler is the handler for hit messages
type HitHandler func(ctx context.Context, msg *HitMessage) error

// NewHitLogHandler returns a handler that stores each hit as an audit row
func NewHitLogHandler(repo repository.HitLogRepository) HitHandler {
	return func(ctx context.Context, msg *HitMessage) error {
		return repo.SaveHitLog(ctx, &model.HitLog{
			MessageID:  msg.MessageID,
			PageID:     msg.PageID,
			VisitorKey: msg.VisitorKey,
			Referrer:   msg.Referrer,
			Country:    msg.Country,
			UserAgent:  msg.UserAgent,
			Platform:   msg.Platform,
			Count:      msg.Count,
			HitTime:    msg.HitTime,
		})
	}
}

// Consumer handles message consumption from RocketMQ
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler HitHandler
	started bool
}

// NewConsumer creates a new RocketMQ consumer
func NewConsumer(cfg *config.RocketMQConfig, handler HitHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.Clustering),
		consumer.WithGroupName(cfg.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.Topic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to hit messages and starts consuming
func (c *Consumer) Subscribe() error {
	if c.started {
		return nil
	}

	selector := consumer.MessageSelector{Type: consumer.TAG, Expression: HitTag}
	if err := c.client.Subscribe(c.topic, selector, c.consume); err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("RocketMQ consumer started")

	return nil
}

// consume decodes a batch and hands each hit to the handler.
// Undecodable messages are dropped; handler failures ask for redelivery.
func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		var hit HitMessage
		if err := json.Unmarshal(msg.Body, &hit); err != nil {
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Dropping malformed hit message")
			continue
		}

		log.Debug().
			Str("msg_id", msg.MsgId).
			Str("page_id", hit.PageID).
			Msg("Processing hit")

		if c.handler != nil {
			if err := c.handler(ctx, &hit); err != nil {
				log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Handler failed")
				return consumer.ConsumeRetryLater, err
			}
		}
	}
	return consumer.ConsumeSuccess, nil
}

// Close closes the consumer
func (c *Consumer) Close() error {
	if c != nil && c.client != nil {
		return c.client.Shutdown()
	}
	return nil
}
