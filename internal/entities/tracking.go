package entities

import "time"

// TrackingEvent - запись журнала перемещений посылки. Только добавление,
// выдача по RecordedAt по возрастанию.
type TrackingEvent struct {
	ID         int64
	TrackingID string
	Status     string
	Note       string
	RecordedAt time.Time
}
