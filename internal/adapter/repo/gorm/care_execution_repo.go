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

type CareExecutionRepo struct {
	db *gorm.DB
}

func NewCareExecutionRepo(db *gorm.DB) CareExecutionRepo {
	return CareExecutionRepo{db: db}
}

func (r CareExecutionRepo) GetByIdempotencyKey(ctx context.Context, plantID, key string) (*ports.CareExecutionRecord, error) {
	var m model.CareExecution
	err := getDBFromCtx(ctx, r.db).
		Where(&model.CareExecution{PlantID: plantID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &ports.CareExecutionRecord{
		PlantID:        m.PlantID,
		IdempotencyKey: m.IdempotencyKey,
		Action:         m.ActionType,
		Result:         decodeCareResult(m),
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r CareExecutionRepo) SaveExecution(ctx context.Context, execution ports.CareExecutionRecord) error {
	stateJSON, _ := json.Marshal(execution.Result.UpdatedState)
	recordsJSON, _ := json.Marshal(execution.Result.Records)
	unlockedJSON, _ := json.Marshal(execution.Result.Unlocked)
	m := model.CareExecution{
		PlantID:        execution.PlantID,
		IdempotencyKey: execution.IdempotencyKey,
		ActionType:     execution.Action,
		UpdatedState:   stateJSON,
		Records:        recordsJSON,
		Unlocked:       unlockedJSON,
		AppliedAt:      execution.AppliedAt,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		return err
	}
	return nil
}

func decodeCareResult(m model.CareExecution) ports.CareResult {
	var state garden.PlantState
	var records []garden.InteractionRecord
	var unlocked []garden.BadgeID
	_ = json.Unmarshal(m.UpdatedState, &state)
	_ = json.Unmarshal(m.Records, &records)
	_ = json.Unmarshal(m.Unlocked, &unlocked)
	return ports.CareResult{
		UpdatedState: state,
		Records:      records,
		Unlocked:     unlocked,
	}
}
