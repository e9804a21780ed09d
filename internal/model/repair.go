package model

type (
	RepairStatus string
	Urgency      string
)

const (
	StatusNew        RepairStatus = "new"
	StatusInProgress RepairStatus = "in-progress"
	StatusCompleted  RepairStatus = "completed"
	StatusCancelled  RepairStatus = "cancelled"
)

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

const (
	RepairSourceLanding = "repair_landing"
	RepairSourceDemo    = "demo"
)

func (s RepairStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	default:
		return false
	}
}

type Repair struct {
	// Unique identifier of the repair ticket, never changes.
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// Phone and email are the contact fields used to link the repair to a customer.
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	DeviceType  string  `json:"deviceType"`
	DeviceBrand string  `json:"deviceBrand"`
	ProblemType string  `json:"problemType"`
	Urgency     Urgency `json:"urgency"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	// Current lifecycle state.
	Status RepairStatus `json:"status"`
	// Creation time.
	Timestamp string `json:"timestamp"`
	// Where the ticket came from, e.g. the landing page form.
	Source    string  `json:"source"`
	UpdatedAt *string `json:"updated_at"`
	// Set the first time the repair is completed and refreshed on every re-completion.
	CompletionDate *string `json:"completion_date"`
	Technician     *string `json:"technician"`
}

func (r Repair) GetID() string { return r.ID }

type CreateRepairParams struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	DeviceType  string  `json:"deviceType"`
	DeviceBrand string  `json:"deviceBrand"`
	ProblemType string  `json:"problemType"`
	Urgency     Urgency `json:"urgency"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
}

// RepairPatch lists the fields a client may change. Nil means "leave as is".
type RepairPatch struct {
	FirstName   *string       `json:"firstName"`
	LastName    *string       `json:"lastName"`
	Phone       *string       `json:"phone"`
	Email       *string       `json:"email"`
	DeviceType  *string       `json:"deviceType"`
	DeviceBrand *string       `json:"deviceBrand"`
	ProblemType *string       `json:"problemType"`
	Urgency     *Urgency      `json:"urgency"`
	Address     *string       `json:"address"`
	Description *string       `json:"description"`
	Status      *RepairStatus `json:"status"`
	Technician  *string       `json:"technician"`
}

func (p RepairPatch) Apply(r *Repair) {
	setIfPresent(&r.FirstName, p.FirstName)
	setIfPresent(&r.LastName, p.LastName)
	setIfPresent(&r.Phone, p.Phone)
	setIfPresent(&r.Email, p.Email)
	setIfPresent(&r.DeviceType, p.DeviceType)
	setIfPresent(&r.DeviceBrand, p.DeviceBrand)
	setIfPresent(&r.ProblemType, p.ProblemType)
	setIfPresent(&r.Urgency, p.Urgency)
	setIfPresent(&r.Address, p.Address)
	setIfPresent(&r.Description, p.Description)
	setIfPresent(&r.Status, p.Status)
	if p.Technician != nil {
		tech := *p.Technician
		r.Technician = &tech
	}
}

type RepairEventType string

const (
	RepairEventCreated       RepairEventType = "repair.created"
	RepairEventStatusChanged RepairEventType = "repair.status_changed"
	RepairEventDeleted       RepairEventType = "repair.deleted"
)

// RepairEvent is published whenever a repair appears, changes status or goes away.
type RepairEvent struct {
	EventID    string
	Type       RepairEventType
	RepairID   string
	Status     RepairStatus
	PrevStatus RepairStatus
	OccurredAt string

	// Ticket summary for downstream notifiers. Empty on deletion.
	Customer    string
	Phone       string
	Device      string
	ProblemType string
	Urgency     Urgency
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
