package model

const AppointmentStatusPlanned = "planned"

type Appointment struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	// Free-text customer reference, not linked to a customer record.
	Customer   string `json:"customer"`
	Title      string `json:"title"`
	Technician string `json:"technician"`
	Status     string `json:"status"`
	Note       string `json:"note"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (a Appointment) GetID() string { return a.ID }

type CreateAppointmentParams struct {
	Start      string `json:"start"`
	Customer   string `json:"customer"`
	Title      string `json:"title"`
	Technician string `json:"technician"`
	Status     string `json:"status"`
	Note       string `json:"note"`
}

type AppointmentPatch struct {
	Start      *string `json:"start"`
	Customer   *string `json:"customer"`
	Title      *string `json:"title"`
	Technician *string `json:"technician"`
	Status     *string `json:"status"`
	Note       *string `json:"note"`
}

func (p AppointmentPatch) Apply(a *Appointment) {
	setIfPresent(&a.Start, p.Start)
	setIfPresent(&a.Customer, p.Customer)
	setIfPresent(&a.Title, p.Title)
	setIfPresent(&a.Technician, p.Technician)
	setIfPresent(&a.Status, p.Status)
	setIfPresent(&a.Note, p.Note)
}
