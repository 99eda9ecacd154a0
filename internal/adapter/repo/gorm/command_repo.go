package gormrepo

import (
	"context"
	"errors"

	"cursedwarden/internal/adapter/repo/gorm/model"
	"cursedwarden/internal/app/ports"

	"gorm.io/gorm"
)

type CommandRepo struct {
	db *gorm.DB
}

func NewCommandRepo(db *gorm.DB) CommandRepo {
	return CommandRepo{db: db}
}

func (r CommandRepo) GetByIdempotencyKey(ctx context.Context, profileID, key string) (*ports.CommandRecord, error) {
	var m model.Command
	err := getDBFromCtx(ctx, r.db).
		Where(&model.Command{ProfileID: profileID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &ports.CommandRecord{
		ProfileID:      m.ProfileID,
		IdempotencyKey: m.IdempotencyKey,
		Kind:           m.Kind,
		Response:       m.Response,
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r CommandRepo) Save(ctx context.Context, record ports.CommandRecord) error {
	m := model.Command{
		ProfileID:      record.ProfileID,
		IdempotencyKey: record.IdempotencyKey,
		Kind:           record.Kind,
		Response:       record.Response,
		AppliedAt:      record.AppliedAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}
