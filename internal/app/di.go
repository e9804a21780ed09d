package app

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"

	"github.com/you-humble/techrepair/internal/config"
	"github.com/you-humble/techrepair/internal/converter"
	"github.com/you-humble/techrepair/internal/metrics"
	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/internal/repository/gateway"
	"github.com/you-humble/techrepair/internal/repository/store"
	apptsvc "github.com/you-humble/techrepair/internal/service/appointment"
	custsvc "github.com/you-humble/techrepair/internal/service/customer"
	invsvc "github.com/you-humble/techrepair/internal/service/inventory"
	repproducer "github.com/you-humble/techrepair/internal/service/producer/repair"
	repsvc "github.com/you-humble/techrepair/internal/service/repair"
	setsvc "github.com/you-humble/techrepair/internal/service/settings"
	statsvc "github.com/you-humble/techrepair/internal/service/stats"
	thttp "github.com/you-humble/techrepair/internal/transport/http/crm/v1"
	"github.com/you-humble/techrepair/platform/closer"
	"github.com/you-humble/techrepair/platform/kafka"
	"github.com/you-humble/techrepair/platform/kafka/producer"
	"github.com/you-humble/techrepair/platform/logger"
)

type Converter interface {
	RepairEventToPayload(e model.RepairEvent) ([]byte, error)
}

type CustomerService interface {
	thttp.CustomerService
	repsvc.CustomerResolver
}

type di struct {
	now func() time.Time

	metrics *metrics.Metrics
	gateway *gateway.Gateway
	store   *store.Store

	syncProducer        sarama.SyncProducer
	repairEventProducer kafka.Producer
	repairProducer      repsvc.RepairEventSender

	conv Converter

	repairService      thttp.RepairService
	customerService    CustomerService
	inventoryService   thttp.InventoryService
	appointmentService thttp.AppointmentService
	settingsService    thttp.SettingsService
	statsService       thttp.StatsService

	router *chi.Mux
}

func NewDI() *di { return &di{now: time.Now} }

func (d *di) Metrics(_ context.Context) *metrics.Metrics {
	if d.metrics == nil {
		d.metrics = metrics.New()
	}

	return d.metrics
}

func (d *di) Gateway(_ context.Context) *gateway.Gateway {
	if d.gateway == nil {
		d.gateway = gateway.NewGateway()
	}

	return d.gateway
}

func (d *di) Store(ctx context.Context) *store.Store {
	if d.store == nil {
		cfg := config.C().Storage

		d.store = store.New(
			d.Gateway(ctx),
			store.Paths{
				Repairs:      cfg.RepairsPath(),
				Customers:    cfg.CustomersPath(),
				Inventory:    cfg.InventoryPath(),
				Appointments: cfg.AppointmentsPath(),
				Settings:     cfg.SettingsPath(),
			},
			d.Metrics(ctx),
			d.now,
		)

		closer.AddNamed("Store flush", func(ctx context.Context) error {
			return d.store.Flush(ctx)
		})
	}

	return d.store
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C().Kafka

		p, err := sarama.NewSyncProducer(
			cfg.Brokers(),
			cfg.RepairEventsProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) RepairEventProducer(ctx context.Context) kafka.Producer {
	if d.repairEventProducer == nil {
		cfg := config.C().Kafka

		if !cfg.Enabled() {
			logger.Info(ctx, "kafka disabled, repair events are dropped")
			d.repairEventProducer = producer.NewNopProducer()
			return d.repairEventProducer
		}

		d.repairEventProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			cfg.RepairEventsTopic(),
			logger.L(),
		)
	}

	return d.repairEventProducer
}

func (d *di) RepairProducer(ctx context.Context) repsvc.RepairEventSender {
	if d.repairProducer == nil {
		d.repairProducer = repproducer.NewRepairProducer(
			d.RepairEventProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.repairProducer
}

func (d *di) CustomerService(ctx context.Context) CustomerService {
	if d.customerService == nil {
		s := d.Store(ctx)
		d.customerService = custsvc.NewCustomerService(s.Customers, s.Repairs, d.now)
	}

	return d.customerService
}

func (d *di) RepairService(ctx context.Context) thttp.RepairService {
	if d.repairService == nil {
		d.repairService = repsvc.NewRepairService(
			d.Store(ctx).Repairs,
			d.CustomerService(ctx),
			d.RepairProducer(ctx),
			d.now,
		)
	}

	return d.repairService
}

func (d *di) InventoryService(ctx context.Context) thttp.InventoryService {
	if d.inventoryService == nil {
		d.inventoryService = invsvc.NewInventoryService(d.Store(ctx).Inventory, d.now)
	}

	return d.inventoryService
}

func (d *di) AppointmentService(ctx context.Context) thttp.AppointmentService {
	if d.appointmentService == nil {
		d.appointmentService = apptsvc.NewAppointmentService(d.Store(ctx).Appointments, d.now)
	}

	return d.appointmentService
}

func (d *di) SettingsService(ctx context.Context) thttp.SettingsService {
	if d.settingsService == nil {
		d.settingsService = setsvc.NewSettingsService(d.Store(ctx).Settings, d.now)
	}

	return d.settingsService
}

func (d *di) StatsService(ctx context.Context) thttp.StatsService {
	if d.statsService == nil {
		d.statsService = statsvc.NewStatsService(d.Store(ctx).Repairs, d.now)
	}

	return d.statsService
}

func (d *di) Services(ctx context.Context) thttp.Services {
	return thttp.Services{
		Repairs:      d.RepairService(ctx),
		Customers:    d.CustomerService(ctx),
		Inventory:    d.InventoryService(ctx),
		Appointments: d.AppointmentService(ctx),
		Settings:     d.SettingsService(ctx),
		Stats:        d.StatsService(ctx),
	}
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
