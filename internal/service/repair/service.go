package repair

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/platform/logger"
)

type RepairRepository interface {
	List(ctx context.Context) []model.Repair
	Get(ctx context.Context, id string) (model.Repair, error)
	Insert(ctx context.Context, rec model.Repair) error
	Update(ctx context.Context, id string, mutate func(*model.Repair) error) (model.Repair, error)
	Delete(ctx context.Context, id string) error
}

type CustomerResolver interface {
	Resolve(ctx context.Context, contact model.Contact) (model.Customer, bool, error)
}

type RepairEventSender interface {
	SendRepairEvent(ctx context.Context, event model.RepairEvent) error
}

type service struct {
	repo      RepairRepository
	customers CustomerResolver
	events    RepairEventSender
	now       func() time.Time
}

func NewRepairService(
	repository RepairRepository,
	customers CustomerResolver,
	events RepairEventSender,
	now func() time.Time,
) *service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:      repository,
		customers: customers,
		events:    events,
		now:       now,
	}
}

func (svc *service) Create(ctx context.Context, params model.CreateRepairParams) (model.Repair, error) {
	const op string = "repair.service.Create"
	log := logger.With(
		logger.String("device_type", params.DeviceType),
		logger.String("urgency", string(params.Urgency)),
	)

	ts := model.FormatTime(svc.now())

	rep := model.Repair{
		ID:          uuid.NewString(),
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		Phone:       params.Phone,
		Email:       params.Email,
		DeviceType:  params.DeviceType,
		DeviceBrand: params.DeviceBrand,
		ProblemType: params.ProblemType,
		Urgency:     params.Urgency,
		Address:     params.Address,
		Description: params.Description,
		Status:      model.StatusNew,
		Timestamp:   ts,
		Source:      params.Source,
	}
	if rep.Urgency == "" {
		rep.Urgency = model.UrgencyLow
	}
	if rep.Source == "" {
		rep.Source = model.RepairSourceLanding
	}

	if err := validate(rep); err != nil {
		log.Warn(ctx, "invalid repair", logger.ErrorF(err))
		return model.Repair{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := svc.repo.Insert(ctx, rep); err != nil {
		log.Error(ctx, "repository insert repair", logger.ErrorF(err))
		return model.Repair{}, fmt.Errorf("%s: %w", op, err)
	}

	log = log.With(logger.String("repair_id", rep.ID))
	log.Info(ctx, "repair created")

	svc.resolveCustomer(ctx, rep)
	svc.publish(ctx, withSummary(model.RepairEvent{
		Type:     model.RepairEventCreated,
		RepairID: rep.ID,
		Status:   rep.Status,
	}, rep))

	return rep, nil
}

// Update merges the allowed fields of patch. An empty patch only refreshes updated_at.
func (svc *service) Update(ctx context.Context, id string, patch model.RepairPatch) (model.Repair, error) {
	const op string = "repair.service.Update"
	log := logger.With(logger.String("repair_id", id))

	ts := model.FormatTime(svc.now())

	var prevStatus model.RepairStatus
	rep, err := svc.repo.Update(ctx, id, func(r *model.Repair) error {
		prevStatus = r.Status

		fields := patch
		fields.Status = nil
		fields.Apply(r)

		if patch.Status != nil {
			if err := applyStatus(r, *patch.Status, ts); err != nil {
				return err
			}
		}
		if err := validateUpdate(*r, patch); err != nil {
			return err
		}

		r.UpdatedAt = &ts
		return nil
	})
	if err != nil {
		log.Warn(ctx, "repository update repair", logger.ErrorF(err))
		return model.Repair{}, fmt.Errorf("%s: %w", op, err)
	}

	svc.resolveCustomer(ctx, rep)

	if rep.Status != prevStatus {
		log.Info(ctx, "repair status changed",
			logger.String("from", string(prevStatus)),
			logger.String("to", string(rep.Status)),
		)
		svc.publish(ctx, withSummary(model.RepairEvent{
			Type:       model.RepairEventStatusChanged,
			RepairID:   rep.ID,
			Status:     rep.Status,
			PrevStatus: prevStatus,
		}, rep))
	}

	return rep, nil
}

func (svc *service) UpdateStatus(ctx context.Context, id string, status model.RepairStatus) (model.Repair, error) {
	return svc.Update(ctx, id, model.RepairPatch{Status: &status})
}

func (svc *service) Delete(ctx context.Context, id string) error {
	const op string = "repair.service.Delete"

	if err := svc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "repair deleted", logger.String("repair_id", id))
	svc.publish(ctx, model.RepairEvent{
		Type:     model.RepairEventDeleted,
		RepairID: id,
	})

	return nil
}

func (svc *service) RepairByID(ctx context.Context, id string) (model.Repair, error) {
	const op string = "repair.service.RepairByID"

	rep, err := svc.repo.Get(ctx, id)
	if err != nil {
		return model.Repair{}, fmt.Errorf("%s: %w", op, err)
	}

	return rep, nil
}

func (svc *service) List(ctx context.Context) []model.Repair {
	return svc.repo.List(ctx)
}

// resolveCustomer runs after the repair is stored, so its failure is only logged.
func (svc *service) resolveCustomer(ctx context.Context, rep model.Repair) {
	if _, _, err := svc.customers.Resolve(ctx, rep.Contact()); err != nil {
		logger.Error(ctx, "resolve customer from repair",
			logger.String("repair_id", rep.ID),
			logger.ErrorF(err),
		)
	}
}

func (svc *service) publish(ctx context.Context, event model.RepairEvent) {
	event.EventID = uuid.NewString()
	event.OccurredAt = model.FormatTime(svc.now())

	if err := svc.events.SendRepairEvent(ctx, event); err != nil {
		logger.Error(ctx, "send repair event",
			logger.String("repair_id", event.RepairID),
			logger.String("event_type", string(event.Type)),
			logger.ErrorF(err),
		)
	}
}

func withSummary(event model.RepairEvent, rep model.Repair) model.RepairEvent {
	event.Customer = strings.TrimSpace(rep.FirstName + " " + rep.LastName)
	event.Phone = rep.Phone
	event.Device = strings.TrimSpace(rep.DeviceType + " " + rep.DeviceBrand)
	event.ProblemType = rep.ProblemType
	event.Urgency = rep.Urgency
	return event
}
