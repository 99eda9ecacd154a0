package gormrepo

import (
	"context"
	"encoding/json"

	"cursedwarden/internal/adapter/repo/gorm/model"
	"cursedwarden/internal/app/ports"
	"cursedwarden/internal/domain/combat"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BattleRepo struct {
	db *gorm.DB
}

func NewBattleRepo(db *gorm.DB) BattleRepo {
	return BattleRepo{db: db}
}

func (r BattleRepo) Save(ctx context.Context, record ports.BattleRecord) error {
	result, err := json.Marshal(record.Result)
	if err != nil {
		return err
	}
	m := model.Battle{
		ProfileID: record.ProfileID,
		Day:       int32(record.Day),
		Seed:      record.Seed,
		Result:    result,
		FoughtAt:  record.FoughtAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}

// ListByProfileID returns the most recent battles first.
func (r BattleRepo) ListByProfileID(ctx context.Context, profileID string, limit int) ([]ports.BattleRecord, error) {
	rows := []model.Battle{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.Battle{ProfileID: profileID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "fought_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.BattleRecord, 0, len(rows))
	for _, row := range rows {
		var result combat.Result
		if len(row.Result) > 0 {
			_ = json.Unmarshal(row.Result, &result)
		}
		out = append(out, ports.BattleRecord{
			ProfileID: row.ProfileID,
			Day:       int(row.Day),
			Seed:      row.Seed,
			Result:    result,
			FoughtAt:  row.FoughtAt,
		})
	}
	return out, nil
}
