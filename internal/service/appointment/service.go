package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/platform/logger"
)

type AppointmentRepository interface {
	List(ctx context.Context) []model.Appointment
	Get(ctx context.Context, id string) (model.Appointment, error)
	Insert(ctx context.Context, rec model.Appointment) error
	Update(ctx context.Context, id string, mutate func(*model.Appointment) error) (model.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo AppointmentRepository
	now  func() time.Time
}

func NewAppointmentService(repository AppointmentRepository, now func() time.Time) *service {
	if now == nil {
		now = time.Now
	}
	return &service{repo: repository, now: now}
}

func (svc *service) Create(ctx context.Context, params model.CreateAppointmentParams) (model.Appointment, error) {
	const op string = "appointment.service.Create"

	ts := model.FormatTime(svc.now())
	appt := model.Appointment{
		ID:         uuid.NewString(),
		Start:      params.Start,
		Customer:   params.Customer,
		Title:      params.Title,
		Technician: params.Technician,
		Status:     params.Status,
		Note:       params.Note,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	if appt.Status == "" {
		appt.Status = model.AppointmentStatusPlanned
	}

	if err := svc.repo.Insert(ctx, appt); err != nil {
		logger.Error(ctx, "repository insert appointment",
			logger.String("start", appt.Start),
			logger.ErrorF(err),
		)
		return model.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}

	return appt, nil
}

func (svc *service) Update(ctx context.Context, id string, patch model.AppointmentPatch) (model.Appointment, error) {
	const op string = "appointment.service.Update"

	ts := model.FormatTime(svc.now())
	appt, err := svc.repo.Update(ctx, id, func(a *model.Appointment) error {
		patch.Apply(a)
		a.UpdatedAt = ts
		return nil
	})
	if err != nil {
		return model.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}

	return appt, nil
}

func (svc *service) Delete(ctx context.Context, id string) error {
	const op string = "appointment.service.Delete"

	if err := svc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) AppointmentByID(ctx context.Context, id string) (model.Appointment, error) {
	const op string = "appointment.service.AppointmentByID"

	appt, err := svc.repo.Get(ctx, id)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}

	return appt, nil
}

func (svc *service) List(ctx context.Context) []model.Appointment {
	return svc.repo.List(ctx)
}
