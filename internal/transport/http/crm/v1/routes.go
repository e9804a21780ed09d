package http

import "github.com/go-chi/chi/v5"

type Services struct {
	Repairs      RepairService
	Customers    CustomerService
	Inventory    InventoryService
	Appointments AppointmentService
	Settings     SettingsService
	Stats        StatsService
}

// Mount registers the /api tree on r.
func Mount(r chi.Router, s Services) {
	r.Route("/api", func(r chi.Router) {
		r.Mount("/repairs", NewRepairHandler(s.Repairs).Routes())
		r.Mount("/customers", NewCustomerHandler(s.Customers).Routes())
		r.Mount("/inventory", NewInventoryHandler(s.Inventory).Routes())
		r.Mount("/appointments", NewAppointmentHandler(s.Appointments).Routes())
		r.Mount("/settings", NewSettingsHandler(s.Settings).Routes())
		r.Get("/stats", NewStatsHandler(s.Stats))
	})
}
