package domain

import "time"

type Block struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"projectID"`
	BlockTypeID int64     `json:"blockTypeID"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Position    int32     `json:"position"`
}

type BlockMove struct {
	BlockID      int64     `json:"blockID"`
	WeeksDelta   int32     `json:"weeksDelta"`
	NewStartDate time.Time `json:"newStartDate"`
	NewEndDate   time.Time `json:"newEndDate"`
}
