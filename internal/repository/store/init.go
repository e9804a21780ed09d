package store

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/techrepair/internal/model"
)

type RepairInserter interface {
	Insert(ctx context.Context, rec model.Repair) error
}

// RepairsBootstrap seeds an empty installation with two demo tickets.
// They carry fixed ids and the demo source so they never pass for landing submissions.
func RepairsBootstrap(ctx context.Context, c RepairInserter, now time.Time) error {
	ts := model.FormatTime(now)

	repairs := []model.Repair{
		{
			ID:          "repair_001",
			FirstName:   "Иван",
			LastName:    "Петров",
			Phone:       "+7 (999) 123-45-67",
			Email:       "ivan@example.com",
			DeviceType:  "smartphone",
			DeviceBrand: "apple",
			ProblemType: "screen",
			Urgency:     model.UrgencyHigh,
			Address:     "ул. Ленина, 10",
			Description: "Разбит экран после падения",
			Status:      model.StatusNew,
			Timestamp:   ts,
			Source:      model.RepairSourceDemo,
			UpdatedAt:   lo.ToPtr(ts),
		},
		{
			ID:          "repair_002",
			FirstName:   "Мария",
			LastName:    "Сидорова",
			Phone:       "+7 (999) 987-65-43",
			Email:       "maria@example.com",
			DeviceType:  "laptop",
			DeviceBrand: "asus",
			ProblemType: "battery",
			Urgency:     model.UrgencyMedium,
			Address:     "пр. Мира, 25",
			Description: "Ноутбук не держит заряд",
			Status:      model.StatusInProgress,
			Timestamp:   ts,
			Source:      model.RepairSourceDemo,
			UpdatedAt:   lo.ToPtr(ts),
			Technician:  lo.ToPtr("Алексей"),
		},
	}

	var errs []error
	for _, r := range repairs {
		errs = append(errs, c.Insert(ctx, r))
	}

	return errors.Join(errs...)
}
