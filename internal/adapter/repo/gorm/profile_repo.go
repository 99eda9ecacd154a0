package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cursedwarden/internal/adapter/repo/gorm/model"
	"cursedwarden/internal/app/ports"
	"cursedwarden/internal/domain/campaign"
	"cursedwarden/internal/domain/inventory"

	"gorm.io/gorm"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return ProfileRepo{db: db}
}

func (r ProfileRepo) GetByProfileID(ctx context.Context, profileID string) (ports.ProfileState, error) {
	var m model.Profile
	if err := getDBFromCtx(ctx, r.db).Where("profile_id = ?", profileID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ProfileState{}, ports.ErrNotFound
		}
		return ports.ProfileState{}, err
	}
	var save inventory.SaveRecord
	if err := json.Unmarshal(m.Save, &save); err != nil {
		return ports.ProfileState{}, fmt.Errorf("%w: %v", inventory.ErrCorruptSave, err)
	}
	return ports.ProfileState{
		ProfileID: m.ProfileID,
		Save:      save,
		Progress:  campaign.Progress{Day: int(m.Day), Phase: campaign.Phase(m.Phase)},
		Version:   m.Version,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func (r ProfileRepo) SaveWithVersion(ctx context.Context, state ports.ProfileState, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	payload, err := json.Marshal(state.Save)
	if err != nil {
		return err
	}
	if expectedVersion == 0 {
		m := model.Profile{
			ProfileID: state.ProfileID,
			Save:      payload,
			Day:       int32(state.Progress.Day),
			Phase:     string(state.Progress.Phase),
			Version:   1,
			UpdatedAt: state.UpdatedAt,
		}
		return db.Create(&m).Error
	}

	updates := map[string]any{
		"save_payload": payload,
		"day":          int32(state.Progress.Day),
		"phase":        string(state.Progress.Phase),
		"version":      expectedVersion + 1,
		"updated_at":   state.UpdatedAt,
	}
	res := db.Model(&model.Profile{}).
		Where("profile_id = ? AND version = ?", state.ProfileID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
