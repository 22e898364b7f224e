package gormrepo

import (
	"context"
	"errors"

	"plantverse/internal/adapter/repo/gorm/model"
	"plantverse/internal/app/ports"

	"gorm.io/gorm"
)

type OwnerRepo struct {
	db *gorm.DB
}

func NewOwnerRepo(db *gorm.DB) OwnerRepo {
	return OwnerRepo{db: db}
}

func (r OwnerRepo) Create(ctx context.Context, owner ports.OwnerRecord) error {
	m := model.Owner{
		OwnerID:   owner.OwnerID,
		Username:  owner.Username,
		Email:     owner.Email,
		CreatedAt: owner.CreatedAt,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r OwnerRepo) GetByUsername(ctx context.Context, username string) (ports.OwnerRecord, error) {
	var m model.Owner
	if err := getDBFromCtx(ctx, r.db).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.OwnerRecord{}, ports.ErrNotFound
		}
		return ports.OwnerRecord{}, err
	}
	return ports.OwnerRecord{
		OwnerID:   m.OwnerID,
		Username:  m.Username,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}, nil
}
