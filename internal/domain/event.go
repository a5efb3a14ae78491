package domain

import "time"

type Event struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"projectID"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type EventMove struct {
	EventID      int64     `json:"eventID"`
	NewStartDate time.Time `json:"newStartDate"`
	NewEndDate   time.Time `json:"newEndDate"`
}
