package tracking

import "swiftdrop/internal/entities"

func ToDomain(e *TrackingEventDB) *entities.TrackingEvent {
	if e == nil {
		return nil
	}
	return &entities.TrackingEvent{
		ID:         e.ID,
		TrackingID: e.TrackingID,
		Status:     e.Status,
		Note:       e.Note,
		RecordedAt: e.RecordedAt,
	}
}

func ToDomainList(eventModels []TrackingEventDB) []entities.TrackingEvent {
	eventEntities := make([]entities.TrackingEvent, 0, len(eventModels))
	for i := range eventModels {
		eventEntities = append(eventEntities, *ToDomain(&eventModels[i]))
	}
	return eventEntities
}
