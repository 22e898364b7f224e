package gormrepo

import (
	"context"

	"plantverse/internal/adapter/repo/gorm/model"
	"plantverse/internal/app/ports"
	"plantverse/internal/domain/garden"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepo struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) InteractionRepo {
	return InteractionRepo{db: db}
}

func (r InteractionRepo) Append(ctx context.Context, records []garden.InteractionRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]model.Interaction, 0, len(records))
	for _, rec := range records {
		rows = append(rows, model.Interaction{
			PlantID:     rec.PlantID,
			ActionType:  rec.Action,
			EffectValue: int32(rec.EffectValue),
			CreatedAt:   rec.CreatedAt,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r InteractionRepo) ListByPlantID(ctx context.Context, plantID string, q ports.InteractionQuery) ([]garden.InteractionRecord, error) {
	rows := []model.Interaction{}
	query := getDBFromCtx(ctx, r.db).
		Where("plant_id = ?", plantID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}, Desc: true}},
		})
	if !q.From.IsZero() {
		query = query.Where("created_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		query = query.Where("created_at <= ?", q.To)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]garden.InteractionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, garden.InteractionRecord{
			PlantID:     row.PlantID,
			Action:      row.ActionType,
			EffectValue: int(row.EffectValue),
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}
