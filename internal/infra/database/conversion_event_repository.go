package database

import (
	"context"
	"database/sql"

	"github.com/bloomafter40/platform/internal/entity"
)

type ConversionEventRepository struct {
	DB *sql.DB
}

func NewConversionEventRepository(db *sql.DB) *ConversionEventRepository {
	return &ConversionEventRepository{DB: db}
}

// Append only. Conversion events are never updated or deleted.
func (r *ConversionEventRepository) Append(ctx context.Context, event *entity.ConversionEvent) error {
	query := `
		INSERT INTO conversion_events (id, lead_id, event_type, event_data, value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var eventData any
	if len(event.EventData) > 0 {
		eventData = []byte(event.EventData)
	}

	_, err := r.DB.ExecContext(ctx, query,
		event.ID,
		event.LeadID,
		event.EventType,
		eventData,
		event.Value,
		event.CreatedAt,
	)
	return err
}

func (r *ConversionEventRepository) FindByLeadID(ctx context.Context, leadID string) ([]*entity.ConversionEvent, error) {
	query := `
		SELECT id, lead_id, event_type, event_data, value, created_at
		FROM conversion_events
		WHERE lead_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*entity.ConversionEvent
	for rows.Next() {
		event := &entity.ConversionEvent{}
		var eventData []byte
		var value sql.NullFloat64

		if err := rows.Scan(&event.ID, &event.LeadID, &event.EventType, &eventData, &value, &event.CreatedAt); err != nil {
			return nil, err
		}

		event.EventData = eventData
		if value.Valid {
			event.Value = &value.Float64
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
