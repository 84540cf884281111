package tracking

import "time"

type TrackingEventDB struct {
	ID         int64
	TrackingID string
	Status     string
	Note       string
	RecordedAt time.Time
}
