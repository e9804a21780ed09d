package stats

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/techrepair/internal/model"
)

type RepairLister interface {
	List(ctx context.Context) []model.Repair
}

type service struct {
	repairs RepairLister
	now     func() time.Time
}

func NewStatsService(repairs RepairLister, now func() time.Time) *service {
	if now == nil {
		now = time.Now
	}
	return &service{repairs: repairs, now: now}
}

// Stats works on a snapshot taken under the read lock.
func (svc *service) Stats(ctx context.Context) model.Stats {
	return Compute(svc.repairs.List(ctx), svc.now())
}

// Compute counts repairs by status, urgency and creation day. "Today" is the
// calendar date of now in now's location. Unparsable timestamps are skipped.
func Compute(repairs []model.Repair, now time.Time) model.Stats {
	byStatus := lo.CountValuesBy(repairs, func(r model.Repair) model.RepairStatus {
		return r.Status
	})

	y, m, d := now.Date()
	loc := now.Location()

	today := lo.CountBy(repairs, func(r model.Repair) bool {
		created, err := model.ParseTime(r.Timestamp, loc)
		if err != nil {
			return false
		}
		cy, cm, cd := created.In(loc).Date()
		return cy == y && cm == m && cd == d
	})

	return model.Stats{
		Total: len(repairs),
		ByStatus: model.StatusCounts{
			New:        byStatus[model.StatusNew],
			InProgress: byStatus[model.StatusInProgress],
			Completed:  byStatus[model.StatusCompleted],
		},
		Urgent: lo.CountBy(repairs, func(r model.Repair) bool {
			return r.Urgency == model.UrgencyHigh
		}),
		Today:     today,
		Timestamp: model.FormatTime(now),
	}
}
