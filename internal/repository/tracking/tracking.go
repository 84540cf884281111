package tracking

import (
	"context"
	"fmt"

	"swiftdrop/internal/entities"
)

const eventColumns = `id, tracking_id, status, note, recorded_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, event entities.TrackingEvent) (*entities.TrackingEvent, error) {
	query := `
		INSERT INTO tracking_events (tracking_id, status, note, recorded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + eventColumns

	var eventModel TrackingEventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		event.TrackingID,
		event.Status,
		event.Note,
		event.RecordedAt,
	).Scan(
		&eventModel.ID,
		&eventModel.TrackingID,
		&eventModel.Status,
		&eventModel.Note,
		&eventModel.RecordedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository append error: %w", err)
	}

	return ToDomain(&eventModel), nil
}

func (r *Repository) ListByTrackingID(ctx context.Context, trackingID string) ([]entities.TrackingEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM tracking_events
		WHERE tracking_id = $1
		ORDER BY recorded_at ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, trackingID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]TrackingEventDB, 0, 8)
	for rows.Next() {
		var eventModel TrackingEventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.TrackingID,
			&eventModel.Status,
			&eventModel.Note,
			&eventModel.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}

	return ToDomainList(eventModels), nil
}
