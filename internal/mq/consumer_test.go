package mq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitorbadge/internal/model"
)

type fakeHitLogRepo struct {
	saved []*model.HitLog
	err   error
}

func (f *fakeHitLogRepo) SaveHitLog(_ context.Context, hit *model.HitLog) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, hit)
	return nil
}

func hitMessageExt(t *testing.T, hit *HitMessage) *primitive.MessageExt {
	t.Helper()
	body, err := json.Marshal(hit)
	require.NoError(t, err)
	return &primitive.MessageExt{
		Message: primitive.Message{Topic: "badge_hits", Body: body},
		MsgId:   hit.MessageID,
	}
}

func TestConsumer_Subscribe_AlreadyStarted(t *testing.T) {
	t.Run("subscribe when already started returns nil", func(t *testing.T) {
		c := &Consumer{
			started: true,
		}

		err := c.Subscribe()
		assert.NoError(t, err)
	})
}

func TestConsumer_Close(t *testing.T) {
	t.Run("nil consumer close returns nil", func(t *testing.T) {
		var c *Consumer
		err := c.Close()
		assert.NoError(t, err)
	})

	t.Run("consumer with nil client close returns nil", func(t *testing.T) {
		c := &Consumer{
			client: nil,
		}
		err := c.Close()
		assert.NoError(t, err)
	})
}

func TestConsumer_Consume(t *testing.T) {
	hitTime := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	t.Run("stores every hit", func(t *testing.T) {
		repo := &fakeHitLogRepo{}
		c := &Consumer{handler: NewHitLogHandler(repo)}

		result, err := c.consume(context.Background(),
			hitMessageExt(t, &HitMessage{MessageID: "m1", PageID: "a", Referrer: "github.com", Count: 1, HitTime: hitTime}),
			hitMessageExt(t, &HitMessage{MessageID: "m2", PageID: "a", Referrer: "Direct", Count: 2, HitTime: hitTime}),
		)

		require.NoError(t, err)
		assert.Equal(t, consumer.ConsumeSuccess, result)
		require.Len(t, repo.saved, 2)
		assert.Equal(t, "m1", repo.saved[0].MessageID)
		assert.Equal(t, "github.com", repo.saved[0].Referrer)
		assert.Equal(t, int64(2), repo.saved[1].Count)
		assert.True(t, hitTime.Equal(repo.saved[1].HitTime))
	})

	t.Run("malformed message is dropped", func(t *testing.T) {
		repo := &fakeHitLogRepo{}
		c := &Consumer{handler: NewHitLogHandler(repo)}

		bad := &primitive.MessageExt{Message: primitive.Message{Body: []byte("{not json")}, MsgId: "bad"}
		result, err := c.consume(context.Background(), bad,
			hitMessageExt(t, &HitMessage{MessageID: "m3", PageID: "b", Count: 1}))

		require.NoError(t, err)
		assert.Equal(t, consumer.ConsumeSuccess, result)
		assert.Len(t, repo.saved, 1)
	})

	t.Run("handler failure asks for redelivery", func(t *testing.T) {
		repo := &fakeHitLogRepo{err: assert.AnError}
		c := &Consumer{handler: NewHitLogHandler(repo)}

		result, err := c.consume(context.Background(),
			hitMessageExt(t, &HitMessage{MessageID: "m4", PageID: "c", Count: 1}))

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, consumer.ConsumeRetryLater, result)
	})

	t.Run("nil handler acknowledges", func(t *testing.T) {
		c := &Consumer{}

		result, err := c.consume(context.Background(),
			hitMessageExt(t, &HitMessage{MessageID: "m5", PageID: "d"}))

		assert.NoError(t, err)
		assert.Equal(t, consumer.ConsumeSuccess, result)
	})
}
