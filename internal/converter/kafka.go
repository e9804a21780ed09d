package converter

import (
	"encoding/json"
	"fmt"

	"github.com/you-humble/techrepair/internal/model"
)

type repairEventRecord struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	RepairID   string `json:"repair_id"`
	Status     string `json:"status,omitempty"`
	PrevStatus string `json:"prev_status,omitempty"`
	OccurredAt string `json:"occurred_at"`

	Customer    string `json:"customer,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Device      string `json:"device,omitempty"`
	ProblemType string `json:"problem_type,omitempty"`
	Urgency     string `json:"urgency,omitempty"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) RepairEventToPayload(e model.RepairEvent) ([]byte, error) {
	payload, err := json.Marshal(repairEventRecord{
		EventID:    e.EventID,
		Type:       string(e.Type),
		RepairID:   e.RepairID,
		Status:     string(e.Status),
		PrevStatus: string(e.PrevStatus),
		OccurredAt: e.OccurredAt,

		Customer:    e.Customer,
		Phone:       e.Phone,
		Device:      e.Device,
		ProblemType: e.ProblemType,
		Urgency:     string(e.Urgency),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal repair event: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) PayloadToRepairEvent(data []byte) (model.RepairEvent, error) {
	var rec repairEventRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.RepairEvent{}, fmt.Errorf("failed to unmarshal repair event: %w", err)
	}

	return model.RepairEvent{
		EventID:    rec.EventID,
		Type:       model.RepairEventType(rec.Type),
		RepairID:   rec.RepairID,
		Status:     model.RepairStatus(rec.Status),
		PrevStatus: model.RepairStatus(rec.PrevStatus),
		OccurredAt: rec.OccurredAt,

		Customer:    rec.Customer,
		Phone:       rec.Phone,
		Device:      rec.Device,
		ProblemType: rec.ProblemType,
		Urgency:     model.Urgency(rec.Urgency),
	}, nil
}
