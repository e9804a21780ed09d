package repair

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/internal/service/mocks"
)

var fixedNow = time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// updateWith makes the repository mock run mutate against rec, like the real collection does.
func updateWith(rec model.Repair) func(context.Context, string, func(*model.Repair) error) (model.Repair, error) {
	return func(_ context.Context, _ string, mutate func(*model.Repair) error) (model.Repair, error) {
		updated := rec
		if err := mutate(&updated); err != nil {
			return model.Repair{}, err
		}
		return updated, nil
	}
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockRepairRepository
		customers  *mocks.MockCustomerResolver
		events     *mocks.MockRepairEventSender
	}

	newSvc := func(d deps) *service {
		return NewRepairService(d.repository, d.customers, d.events, fixedClock)
	}

	phone := gofakeit.Phone()
	email := gofakeit.Email()

	type testCase struct {
		name   string
		params model.CreateRepairParams
		setup  func(d deps)
		assert func(t *testing.T, res model.Repair, err error, d deps)
	}

	tests := []testCase{
		{
			name: "defaults: status new, urgency low, landing source",
			params: model.CreateRepairParams{
				FirstName:  gofakeit.FirstName(),
				Phone:      phone,
				DeviceType: "laptop",
			},
			setup: func(d deps) {
				d.repository.
					On("Insert", mock.Anything, mock.MatchedBy(func(r model.Repair) bool {
						return r.Status == model.StatusNew &&
							r.Urgency == model.UrgencyLow &&
							r.Source == model.RepairSourceLanding
					})).
					Return(nil).
					Once()
				d.customers.
					On("Resolve", mock.Anything, mock.MatchedBy(func(c model.Contact) bool {
						return c.Phone == phone
					})).
					Return(model.Customer{ID: uuid.NewString()}, true, nil).
					Once()
				d.events.
					On("SendRepairEvent", mock.Anything, mock.MatchedBy(func(e model.RepairEvent) bool {
						return e.Type == model.RepairEventCreated &&
							e.Status == model.StatusNew &&
							e.EventID != "" &&
							e.Phone == phone &&
							e.Device == "laptop" &&
							e.Urgency == model.UrgencyLow
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.NoError(t, err)

				_, parseErr := uuid.Parse(res.ID)
				assert.NoError(t, parseErr)
				assert.Equal(t, model.StatusNew, res.Status)
				assert.Equal(t, model.UrgencyLow, res.Urgency)
				assert.Equal(t, model.RepairSourceLanding, res.Source)
				assert.Equal(t, model.FormatTime(fixedNow), res.Timestamp)
				assert.Nil(t, res.CompletionDate)
				assert.Nil(t, res.UpdatedAt)
			},
		},
		{
			name: "explicit urgency and source are kept",
			params: model.CreateRepairParams{
				Email:   email,
				Urgency: model.UrgencyHigh,
				Source:  "phone_call",
			},
			setup: func(d deps) {
				d.repository.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
				d.customers.On("Resolve", mock.Anything, mock.Anything).Return(model.Customer{}, false, nil).Once()
				d.events.On("SendRepairEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, model.UrgencyHigh, res.Urgency)
				assert.Equal(t, "phone_call", res.Source)
				assert.Equal(t, email, res.Email)
			},
		},
		{
			name:   "validation error: no phone and no email",
			params: model.CreateRepairParams{FirstName: gofakeit.FirstName()},
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Empty(t, res.ID)

				d.repository.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
				d.customers.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "validation error: unknown urgency",
			params: model.CreateRepairParams{Phone: phone, Urgency: "asap"},
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name:   "repository error is returned, nothing else happens",
			params: model.CreateRepairParams{Phone: phone},
			setup: func(d deps) {
				d.repository.On("Insert", mock.Anything, mock.Anything).Return(model.ErrConflict).Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrConflict)

				d.customers.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
				d.events.AssertNotCalled(t, "SendRepairEvent", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "resolver and event failures do not fail the request",
			params: model.CreateRepairParams{Phone: phone},
			setup: func(d deps) {
				d.repository.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
				d.customers.On("Resolve", mock.Anything, mock.Anything).
					Return(model.Customer{}, false, errors.New("customers file is broken")).Once()
				d.events.On("SendRepairEvent", mock.Anything, mock.Anything).
					Return(errors.New("kafka is down")).Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.NoError(t, err)
				assert.NotEmpty(t, res.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockRepairRepository(t),
				customers:  mocks.NewMockCustomerResolver(t),
				events:     mocks.NewMockRepairEventSender(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			res, err := svc.Create(ctx, tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockRepairRepository
		customers  *mocks.MockCustomerResolver
		events     *mocks.MockRepairEventSender
	}

	newSvc := func(d deps) *service {
		return NewRepairService(d.repository, d.customers, d.events, fixedClock)
	}

	id := uuid.NewString()
	created := model.FormatTime(fixedNow.Add(-48 * time.Hour))
	earlier := model.FormatTime(fixedNow.Add(-time.Hour))
	now := model.FormatTime(fixedNow)

	stored := model.Repair{
		ID:        id,
		FirstName: "Anna",
		Phone:     "+7 999 000-00-01",
		Urgency:   model.UrgencyMedium,
		Status:    model.StatusNew,
		Timestamp: created,
		Source:    model.RepairSourceLanding,
	}

	type testCase struct {
		name   string
		patch  model.RepairPatch
		setup  func(d deps)
		assert func(t *testing.T, res model.Repair, err error, d deps)
	}

	tests := []testCase{
		{
			name:  "complete stamps completion_date and publishes status change",
			patch: model.RepairPatch{Status: lo.ToPtr(model.StatusCompleted)},
			setup: func(d deps) {
				d.repository.On("Update", mock.Anything, id, mock.Anything).Return(updateWith(stored)).Once()
				d.customers.On("Resolve", mock.Anything, mock.Anything).Return(model.Customer{}, false, nil).Once()
				d.events.
					On("SendRepairEvent", mock.Anything, mock.MatchedBy(func(e model.RepairEvent) bool {
						return e.Type == model.RepairEventStatusChanged &&
							e.Status == model.StatusCompleted &&
							e.PrevStatus == model.StatusNew &&
							e.RepairID == id
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, model.StatusCompleted, res.Status)
				require.NotNil(t, res.CompletionDate)
				assert.Equal(t, now, *res.CompletionDate)
				require.NotNil(t, res.UpdatedAt)
				assert.Equal(t, now, *res.UpdatedAt)
			},
		},
		{
			name:  "leaving completed keeps completion_date",
			patch: model.RepairPatch{Status: lo.ToPtr(model.StatusInProgress)},
			setup: func(d deps) {
				done := stored
				done.Status = model.StatusCompleted
				done.CompletionDate = lo.ToPtr(earlier)

				d.repository.On("Update", mock.Anything, id, mock.Anything).Return(updateWith(done)).Once()
				d.customers.On("Resolve", mock.Anything, mock.Anything).Return(model.Customer{}, false, nil).Once()
				d.events.On("SendRepairEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, model.StatusInProgress, res.Status)
				require.NotNil(t, res.CompletionDate)
				assert.Equal(t, earlier, *res.CompletionDate)
			},
		},
		{
			name:  "re-completion overwrites completion_date",
			patch: model.RepairPatch{Status: lo.ToPtr(model.StatusCompleted)},
			setup: func(d deps) {
				done := stored
				done.Status = model.StatusCompleted
				done.CompletionDate = lo.ToPtr(earlier)

				d.repository.On("Update", mock.Anything, id, mock.Anything).Return(updateWith(done)).Once()
				d.customers.On("Resolve", mock.Anything, mock.Anything).Return(model.Customer{}, false, nil).Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res.CompletionDate)
				assert.Equal(t, now, *res.CompletionDate)

				d.events.AssertNotCalled(t, "SendRepairEvent", mock.Anything, mock.Anything)
			},
		},
		{
			name: "field edit keeps id, timestamp and source",
			patch: model.RepairPatch{
				FirstName:  lo.ToPtr("Maria"),
				Technician: lo.ToPtr("Oleg"),
			},
			setup: func(d deps) {
				d.repository.On("Update", mock.Anything, id, mock.Anything).Return(updateWith(stored)).Once()
				d.customers.
					On("Resolve", mock.Anything, mock.MatchedBy(func(c model.Contact) bool {
						return c.FirstName == "Maria" && c.Phone == stored.Phone
					})).
					Return(model.Customer{}, false, nil).
					Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, id, res.ID)
				assert.Equal(t, created, res.Timestamp)
				assert.Equal(t, model.RepairSourceLanding, res.Source)
				assert.Equal(t, "Maria", res.FirstName)
				require.NotNil(t, res.Technician)
				assert.Equal(t, "Oleg", *res.Technician)
				assert.Equal(t, model.StatusNew, res.Status)

				d.events.AssertNotCalled(t, "SendRepairEvent", mock.Anything, mock.Anything)
			},
		},
		{
			name:  "empty patch only refreshes updated_at",
			patch: model.RepairPatch{},
			setup: func(d deps) {
				d.repository.On("Update", mock.Anything, id, mock.Anything).Return(updateWith(stored)).Once()
				d.customers.On("Resolve", mock.Anything, mock.Anything).Return(model.Customer{}, false, nil).Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.NoError(t, err)

				want := stored
				want.UpdatedAt = lo.ToPtr(now)
				assert.Equal(t, want, res)
			},
		},
		{
			name:  "unknown status is rejected",
			patch: model.RepairPatch{Status: lo.ToPtr(model.RepairStatus("archived"))},
			setup: func(d deps) {
				d.repository.On("Update", mock.Anything, id, mock.Anything).Return(updateWith(stored)).Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)

				d.customers.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
				d.events.AssertNotCalled(t, "SendRepairEvent", mock.Anything, mock.Anything)
			},
		},
		{
			name: "clearing both contacts is rejected",
			patch: model.RepairPatch{
				Phone: lo.ToPtr(""),
				Email: lo.ToPtr(""),
			},
			setup: func(d deps) {
				d.repository.On("Update", mock.Anything, id, mock.Anything).Return(updateWith(stored)).Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name:  "not found",
			patch: model.RepairPatch{Status: lo.ToPtr(model.StatusCancelled)},
			setup: func(d deps) {
				d.repository.On("Update", mock.Anything, id, mock.Anything).
					Return(model.Repair{}, model.ErrRepairNotFound).Once()
			},
			assert: func(t *testing.T, res model.Repair, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockRepairRepository(t),
				customers:  mocks.NewMockCustomerResolver(t),
				events:     mocks.NewMockRepairEventSender(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			res, err := svc.Update(ctx, id, tt.patch)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	t.Parallel()

	repository := mocks.NewMockRepairRepository(t)
	customers := mocks.NewMockCustomerResolver(t)
	events := mocks.NewMockRepairEventSender(t)

	id := uuid.NewString()
	stored := model.Repair{ID: id, Email: gofakeit.Email(), Status: model.StatusNew, Urgency: model.UrgencyLow}

	repository.On("Update", mock.Anything, id, mock.Anything).Return(updateWith(stored)).Once()
	customers.On("Resolve", mock.Anything, mock.Anything).Return(model.Customer{}, false, nil).Once()
	events.On("SendRepairEvent", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewRepairService(repository, customers, events, fixedClock)

	res, err := svc.UpdateStatus(context.Background(), id, model.StatusInProgress)

	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, res.Status)
	assert.Nil(t, res.CompletionDate)
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		repository := mocks.NewMockRepairRepository(t)
		events := mocks.NewMockRepairEventSender(t)
		id := uuid.NewString()

		repository.On("Delete", mock.Anything, id).Return(nil).Once()
		events.
			On("SendRepairEvent", mock.Anything, mock.MatchedBy(func(e model.RepairEvent) bool {
				return e.Type == model.RepairEventDeleted && e.RepairID == id
			})).
			Return(nil).
			Once()

		svc := NewRepairService(repository, mocks.NewMockCustomerResolver(t), events, fixedClock)

		require.NoError(t, svc.Delete(context.Background(), id))
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		repository := mocks.NewMockRepairRepository(t)
		events := mocks.NewMockRepairEventSender(t)

		repository.On("Delete", mock.Anything, "nope").Return(model.ErrRepairNotFound).Once()

		svc := NewRepairService(repository, mocks.NewMockCustomerResolver(t), events, fixedClock)

		err := svc.Delete(context.Background(), "nope")
		require.ErrorIs(t, err, model.ErrNotFound)
		events.AssertNotCalled(t, "SendRepairEvent", mock.Anything, mock.Anything)
	})
}

func TestServiceRepairByID(t *testing.T) {
	t.Parallel()

	repository := mocks.NewMockRepairRepository(t)
	id := uuid.NewString()
	rep := model.Repair{ID: id, Phone: gofakeit.Phone()}

	repository.On("Get", mock.Anything, id).Return(rep, nil).Once()
	repository.On("Get", mock.Anything, "missing").Return(model.Repair{}, model.ErrRepairNotFound).Once()

	svc := NewRepairService(repository, mocks.NewMockCustomerResolver(t), mocks.NewMockRepairEventSender(t), fixedClock)

	got, err := svc.RepairByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, rep, got)

	_, err = svc.RepairByID(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrRepairNotFound)
}
