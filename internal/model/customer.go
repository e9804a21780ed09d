package model

type Customer struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (c Customer) GetID() string { return c.ID }

// CustomerDetails is a customer together with the number of repairs sharing its contact key.
type CustomerDetails struct {
	Customer
	RepairsCount int `json:"repairs_count"`
}

// Contact is the subset of repair fields the customer resolver works with.
type Contact struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

func (r Repair) Contact() Contact {
	return Contact{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
	}
}

type CreateCustomerParams struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Note      string `json:"note"`
}

type CustomerPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Note      *string `json:"note"`
}

func (p CustomerPatch) Apply(c *Customer) {
	setIfPresent(&c.FirstName, p.FirstName)
	setIfPresent(&c.LastName, p.LastName)
	setIfPresent(&c.Phone, p.Phone)
	setIfPresent(&c.Email, p.Email)
	setIfPresent(&c.Note, p.Note)
}
