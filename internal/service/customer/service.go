package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/platform/logger"
)

type CustomerRepository interface {
	List(ctx context.Context) []model.Customer
	Get(ctx context.Context, id string) (model.Customer, error)
	Insert(ctx context.Context, rec model.Customer) error
	Update(ctx context.Context, id string, mutate func(*model.Customer) error) (model.Customer, error)
	Delete(ctx context.Context, id string) error
	Upsert(
		ctx context.Context,
		match func(model.Customer) bool,
		update func(*model.Customer),
		create func() model.Customer,
	) (model.Customer, bool, error)
}

type RepairLister interface {
	List(ctx context.Context) []model.Repair
}

type service struct {
	repo    CustomerRepository
	repairs RepairLister
	now     func() time.Time
}

func NewCustomerService(repository CustomerRepository, repairs RepairLister, now func() time.Time) *service {
	if now == nil {
		now = time.Now
	}
	return &service{repo: repository, repairs: repairs, now: now}
}

// Resolve links a repair contact to a customer, creating the customer on first sight.
// Known fields are never blanked by empty incoming ones. Contacts without phone and email are ignored.
func (svc *service) Resolve(ctx context.Context, contact model.Contact) (model.Customer, bool, error) {
	const op string = "customer.service.Resolve"

	key := ContactKey(contact.Phone, contact.Email)
	if key == "" {
		return model.Customer{}, false, nil
	}
	log := logger.With(logger.String("contact_key", key))

	ts := model.FormatTime(svc.now())

	cust, created, err := svc.repo.Upsert(ctx,
		func(c model.Customer) bool {
			return ContactKey(c.Phone, c.Email) == key
		},
		func(c *model.Customer) {
			overwriteIfSet(&c.FirstName, contact.FirstName)
			overwriteIfSet(&c.LastName, contact.LastName)
			overwriteIfSet(&c.Phone, contact.Phone)
			overwriteIfSet(&c.Email, contact.Email)
			c.UpdatedAt = ts
		},
		func() model.Customer {
			return model.Customer{
				ID:        uuid.NewString(),
				FirstName: contact.FirstName,
				LastName:  contact.LastName,
				Phone:     contact.Phone,
				Email:     contact.Email,
				Note:      "",
				CreatedAt: ts,
				UpdatedAt: ts,
			}
		},
	)
	if err != nil {
		log.Error(ctx, "repository upsert customer", logger.ErrorF(err))
		return model.Customer{}, false, fmt.Errorf("%s: %w", op, err)
	}

	if created {
		log.Info(ctx, "customer created from repair", logger.String("customer_id", cust.ID))
	}

	return cust, created, nil
}

func (svc *service) Create(ctx context.Context, params model.CreateCustomerParams) (model.Customer, error) {
	const op string = "customer.service.Create"

	ts := model.FormatTime(svc.now())
	cust := model.Customer{
		ID:        uuid.NewString(),
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Phone:     params.Phone,
		Email:     params.Email,
		Note:      params.Note,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if err := svc.repo.Insert(ctx, cust); err != nil {
		logger.Error(ctx, "repository insert customer", logger.ErrorF(err))
		return model.Customer{}, fmt.Errorf("%s: %w", op, err)
	}

	return cust, nil
}

func (svc *service) Update(ctx context.Context, id string, patch model.CustomerPatch) (model.Customer, error) {
	const op string = "customer.service.Update"

	ts := model.FormatTime(svc.now())
	cust, err := svc.repo.Update(ctx, id, func(c *model.Customer) error {
		patch.Apply(c)
		c.UpdatedAt = ts
		return nil
	})
	if err != nil {
		return model.Customer{}, fmt.Errorf("%s: %w", op, err)
	}

	return cust, nil
}

func (svc *service) Delete(ctx context.Context, id string) error {
	const op string = "customer.service.Delete"

	if err := svc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) List(ctx context.Context) []model.Customer {
	return svc.repo.List(ctx)
}

// CustomerByID also counts the repairs that share the customer's contact key.
func (svc *service) CustomerByID(ctx context.Context, id string) (model.CustomerDetails, error) {
	const op string = "customer.service.CustomerByID"

	cust, err := svc.repo.Get(ctx, id)
	if err != nil {
		return model.CustomerDetails{}, fmt.Errorf("%s: %w", op, err)
	}

	key := ContactKey(cust.Phone, cust.Email)
	count := 0
	if key != "" {
		count = lo.CountBy(svc.repairs.List(ctx), func(r model.Repair) bool {
			return ContactKey(r.Phone, r.Email) == key
		})
	}

	return model.CustomerDetails{Customer: cust, RepairsCount: count}, nil
}

func overwriteIfSet(dst *string, incoming string) {
	if incoming != "" {
		*dst = incoming
	}
}
