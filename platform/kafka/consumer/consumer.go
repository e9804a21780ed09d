package consumer

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/you-humble/techrepair/platform/kafka"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type consumer struct {
	group       sarama.ConsumerGroup
	groupID     string
	topics      []string
	logger      Logger
	middlewares []kafka.Middleware
}

// NewConsumer joins groupID on topics. groupID only labels log lines, the
// group itself must already be created with it.
func NewConsumer(
	group sarama.ConsumerGroup,
	groupID string,
	topics []string,
	logger Logger,
	middlewares ...kafka.Middleware,
) *consumer {
	return &consumer{
		group:       group,
		groupID:     groupID,
		topics:      topics,
		logger:      logger,
		middlewares: middlewares,
	}
}

// Consume blocks until ctx is done or the group is closed. Every return of
// group.Consume is a rebalance, after which the session is rejoined.
func (c *consumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	gh := NewGroupHandler(handler, c.logger, c.middlewares...)
	fields := []zap.Field{zap.String("group", c.groupID), zap.Strings("topics", c.topics)}

	c.logger.Info(ctx, "joining kafka consumer group", fields...)

	for generation := 1; ; generation++ {
		if err := c.group.Consume(ctx, c.topics, gh); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				c.logger.Info(ctx, "kafka consumer group closed", fields...)
				return nil
			}

			c.logger.Error(ctx, "kafka consume failed", append(fields, zap.Error(err))...)
			return errors.Wrapf(err, "consume group %q", c.groupID)
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		c.logger.Info(ctx, "kafka consumer group rebalanced",
			append(fields, zap.Int("session", generation))...)
	}
}
