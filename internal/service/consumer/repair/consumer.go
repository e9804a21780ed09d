package repconsumer

import (
	"context"
	"fmt"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/platform/kafka"
	"github.com/you-humble/techrepair/platform/logger"
)

type RepairEventConverter interface {
	PayloadToRepairEvent(data []byte) (model.RepairEvent, error)
}

type RepairEventNotifier interface {
	NotifyRepairEvent(ctx context.Context, event model.RepairEvent) error
}

type repairConsumer struct {
	consumer kafka.Consumer
	conv     RepairEventConverter
	svc      RepairEventNotifier
}

func NewRepairConsumer(
	consumer kafka.Consumer,
	conv RepairEventConverter,
	svc RepairEventNotifier,
) *repairConsumer {
	return &repairConsumer{
		consumer: consumer,
		conv:     conv,
		svc:      svc,
	}
}

func (s *repairConsumer) RunRepairEventsConsume(ctx context.Context) error {
	logger.Info(ctx, "starting repair events consumer")

	if err := s.consumer.Consume(ctx, s.repairEventHandler); err != nil {
		logger.Error(ctx, "consume from repair events topic", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *repairConsumer) repairEventHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.PayloadToRepairEvent(msg.Value)
	if err != nil {
		logger.Error(ctx, "decode repair event",
			logger.String("key", string(msg.Key)),
			logger.ErrorF(err),
		)
		return fmt.Errorf("converter payload_to_repair_event error: %w", err)
	}

	if err := s.svc.NotifyRepairEvent(ctx, event); err != nil {
		return err
	}

	return nil
}
