package consumer

import (
	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/you-humble/techrepair/platform/kafka"
)

// groupHandler adapts a kafka.MessageHandler to sarama.ConsumerGroupHandler.
type groupHandler struct {
	handler kafka.MessageHandler
	logger  Logger
}

// NewGroupHandler wraps handler so that middlewares[0] runs first.
func NewGroupHandler(handler kafka.MessageHandler, logger Logger, middlewares ...kafka.Middleware) *groupHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return &groupHandler{
		handler: handler,
		logger:  logger,
	}
}

func (g *groupHandler) Setup(session sarama.ConsumerGroupSession) error {
	g.logger.Info(session.Context(), "kafka partitions assigned",
		zap.String("member", session.MemberID()),
		zap.Int32("generation", session.GenerationID()),
		zap.Any("claims", session.Claims()),
	)
	return nil
}

func (g *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim marks a message only after the handler accepted it. A failed
// message is logged and skipped. Marking a later message on the same
// partition commits past it, so it is dropped rather than redelivered.
func (g *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()

	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				g.logger.Info(ctx, "kafka claim closed",
					zap.String("topic", claim.Topic()),
					zap.Int32("partition", claim.Partition()),
				)
				return nil
			}

			msg := kafka.Message{
				Key:       message.Key,
				Value:     message.Value,
				Headers:   extractHeaders(message.Headers),
				Topic:     message.Topic,
				Partition: message.Partition,
				Offset:    message.Offset,
				Timestamp: message.Timestamp,
			}

			if err := g.handler(ctx, msg); err != nil {
				g.logger.Error(ctx, "kafka message dropped",
					zap.String("topic", message.Topic),
					zap.Int32("partition", message.Partition),
					zap.Int64("offset", message.Offset),
					zap.String("key", string(message.Key)),
					zap.Error(err),
				)
				continue
			}

			session.MarkMessage(message, "")

		case <-ctx.Done():
			g.logger.Info(ctx, "kafka session context done",
				zap.String("topic", claim.Topic()),
				zap.Int32("partition", claim.Partition()),
			)
			return nil
		}
	}
}

func extractHeaders(headers []*sarama.RecordHeader) map[string]string {
	result := make(map[string]string, len(headers))
	for _, h := range headers {
		if h != nil && h.Key != nil {
			result[string(h.Key)] = string(h.Value)
		}
	}

	return result
}
