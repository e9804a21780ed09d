package model

type StatusCounts struct {
	New        int
	InProgress int
	Completed  int
}

func (c StatusCounts) Sum() int { return c.New + c.InProgress + c.Completed }

type Stats struct {
	Total int
	// Cancelled repairs have no bucket and only count towards Total.
	ByStatus  StatusCounts
	Urgent    int
	Today     int
	Timestamp string
}
