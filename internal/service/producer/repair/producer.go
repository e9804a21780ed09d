package repproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/platform/kafka"
)

const eventTypeHeader = "event_type"

type Converter interface {
	RepairEventToPayload(e model.RepairEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewRepairProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendRepairEvent keys messages by repair id so events of one repair stay ordered.
func (s *service) SendRepairEvent(ctx context.Context, event model.RepairEvent) error {
	payload, err := s.conv.RepairEventToPayload(event)
	if err != nil {
		return fmt.Errorf("converter repair_event_to_payload error: %w", err)
	}

	err = s.producer.Send(ctx, kafka.Message{
		Key:     []byte(event.RepairID),
		Value:   payload,
		Headers: map[string]string{eventTypeHeader: string(event.Type)},
	})
	if err != nil {
		return fmt.Errorf("producer to repair events topic error: %w", err)
	}

	return nil
}
