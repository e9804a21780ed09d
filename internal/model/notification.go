package model

// RepairNotification is the view rendered into a chat message.
type RepairNotification struct {
	RepairID        string
	Customer        string
	Phone           string
	Device          string
	ProblemType     string
	UrgencyLabel    string
	StatusLabel     string
	PrevStatusLabel string
}
