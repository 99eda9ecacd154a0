package gormrepo

import (
	"context"
	"encoding/json"

	"cursedwarden/internal/adapter/repo/gorm/model"
	"cursedwarden/internal/domain/campaign"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, profileID string, events []campaign.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.Event, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, model.Event{
			ProfileID:  profileID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

// ListByProfileID returns events oldest first so a replay reads them in
// the order they happened.
func (r EventRepo) ListByProfileID(ctx context.Context, profileID string, limit int) ([]campaign.Event, error) {
	rows := []model.Event{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.Event{ProfileID: profileID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]campaign.Event, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, campaign.Event{
			Type:       row.Type,
			ProfileID:  row.ProfileID,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
