package domain

import "time"

type AvailabilityEntry struct {
	UserID     int64     `json:"userID"`
	WeekStart  time.Time `json:"weekStart"`
	Dedication int32     `json:"dedication"`
}
