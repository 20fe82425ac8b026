package mq

import "context"

// ProducerInterface publishes accepted hits (for testing)
type ProducerInterface interface {
	SendHit(ctx context.Context, msg *HitMessage) error
	Close() error
}

// ConsumerInterface drains hits into the audit log (for testing)
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}

var (
	_ ProducerInterface = (*Producer)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
