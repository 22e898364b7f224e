package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"plantverse/internal/adapter/repo/gorm/model"
	"plantverse/internal/app/ports"
	"plantverse/internal/domain/garden"

	"gorm.io/gorm"
)

type PlantStateRepo struct {
	db *gorm.DB
}

func NewPlantStateRepo(db *gorm.DB) PlantStateRepo {
	return PlantStateRepo{db: db}
}

func (r PlantStateRepo) GetByPlantID(ctx context.Context, plantID string) (garden.PlantState, error) {
	var m model.Plant
	if err := getDBFromCtx(ctx, r.db).Where("plant_id = ?", plantID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return garden.PlantState{}, ports.ErrNotFound
		}
		return garden.PlantState{}, err
	}
	return decodePlant(m), nil
}

func (r PlantStateRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]garden.PlantState, error) {
	var rows []model.Plant
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("created_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]garden.PlantState, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodePlant(row))
	}
	return out, nil
}

func (r PlantStateRepo) SaveWithVersion(ctx context.Context, state garden.PlantState, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	badgesJSON, _ := json.Marshal(state.Badges)
	careJSON, _ := json.Marshal(state.Care)

	if expectedVersion == 0 {
		m := model.Plant{
			PlantID:     state.PlantID,
			OwnerID:     state.OwnerID,
			Name:        state.Name,
			Health:      int32(state.Health),
			Xp:          int32(state.XP),
			Level:       int32(state.Level),
			SoilQuality: int32(state.SoilQuality),
			Mood:        string(state.Mood),
			Badges:      badgesJSON,
			Care:        careJSON,
			Version:     state.Version,
			LastUpdated: state.LastUpdated,
		}
		if err := db.Create(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ports.ErrConflict
			}
			return err
		}
		return nil
	}

	updates := map[string]any{
		"name":         state.Name,
		"health":       int32(state.Health),
		"xp":           int32(state.XP),
		"level":        int32(state.Level),
		"soil_quality": int32(state.SoilQuality),
		"mood":         string(state.Mood),
		"badges":       badgesJSON,
		"care":         careJSON,
		"version":      state.Version,
		"last_updated": state.LastUpdated,
	}

	res := db.Model(&model.Plant{}).
		Where("plant_id = ? AND version = ?", state.PlantID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func decodePlant(m model.Plant) garden.PlantState {
	var badges []garden.BadgeID
	var care garden.CareStats
	_ = json.Unmarshal(m.Badges, &badges)
	_ = json.Unmarshal(m.Care, &care)
	return garden.PlantState{
		OwnerID:     m.OwnerID,
		PlantID:     m.PlantID,
		Name:        m.Name,
		Health:      int(m.Health),
		XP:          int(m.Xp),
		Level:       int(m.Level),
		SoilQuality: int(m.SoilQuality),
		Mood:        garden.Mood(m.Mood),
		Badges:      badges,
		Care:        care,
		Version:     m.Version,
		LastUpdated: m.LastUpdated,
	}
}
