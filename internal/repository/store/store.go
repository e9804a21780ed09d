package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/internal/repository/collection"
	"github.com/you-humble/techrepair/internal/repository/gateway"
	"github.com/you-humble/techrepair/internal/repository/settings"
	"github.com/you-humble/techrepair/platform/logger"
)

const (
	RepairsCollection      = "repairs"
	CustomersCollection    = "customers"
	InventoryCollection    = "inventory"
	AppointmentsCollection = "appointments"
)

type Paths struct {
	Repairs      string
	Customers    string
	Inventory    string
	Appointments string
	Settings     string
}

type SettingsRepository interface {
	Load(ctx context.Context) bool
	Get(ctx context.Context) model.Settings
	Merge(ctx context.Context, patch model.Settings) model.Settings
	Flush(ctx context.Context) error
}

// Store owns every collection of the service. All of them share one lock.
type Store struct {
	mu    sync.RWMutex
	paths Paths

	Repairs      *collection.Collection[model.Repair]
	Customers    *collection.Collection[model.Customer]
	Inventory    *collection.Collection[model.InventoryItem]
	Appointments *collection.Collection[model.Appointment]
	Settings     SettingsRepository
}

func New(gw *gateway.Gateway, paths Paths, obs collection.Observer, now func() time.Time) *Store {
	s := &Store{paths: paths}

	s.Repairs = collection.New(RepairsCollection, &s.mu,
		gateway.NewEnvelopeFile[model.Repair](gw, paths.Repairs, now),
		model.ErrRepairNotFound, obs,
	)
	s.Customers = collection.New(CustomersCollection, &s.mu,
		gateway.NewEnvelopeFile[model.Customer](gw, paths.Customers, now),
		model.ErrCustomerNotFound, obs,
	)
	s.Inventory = collection.New(InventoryCollection, &s.mu,
		gateway.NewEnvelopeFile[model.InventoryItem](gw, paths.Inventory, now),
		model.ErrInventoryItemNotFound, obs,
	)
	s.Appointments = collection.New(AppointmentsCollection, &s.mu,
		gateway.NewEnvelopeFile[model.Appointment](gw, paths.Appointments, now),
		model.ErrAppointmentNotFound, obs,
	)
	s.Settings = settings.NewSettingsRepository(&s.mu, gw, paths.Settings)

	return s
}

// Load reads every file. It never fails: unreadable files give empty collections.
// It reports whether the repairs file was absent.
func (s *Store) Load(ctx context.Context) (repairsMissing bool) {
	_, err := os.Stat(s.paths.Repairs)
	repairsMissing = errors.Is(err, fs.ErrNotExist)

	s.Repairs.Load(ctx)
	s.Customers.Load(ctx)
	s.Inventory.Load(ctx)
	s.Appointments.Load(ctx)
	s.Settings.Load(ctx)

	logger.Info(ctx, "store loaded",
		logger.Int(RepairsCollection, s.Repairs.Len()),
		logger.Int(CustomersCollection, s.Customers.Len()),
		logger.Int(InventoryCollection, s.Inventory.Len()),
		logger.Int(AppointmentsCollection, s.Appointments.Len()),
	)

	return repairsMissing
}

// Flush writes every collection and the settings document.
func (s *Store) Flush(ctx context.Context) error {
	return errors.Join(
		s.Repairs.Flush(ctx),
		s.Customers.Flush(ctx),
		s.Inventory.Flush(ctx),
		s.Appointments.Flush(ctx),
		s.Settings.Flush(ctx),
	)
}
