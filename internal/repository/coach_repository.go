package repository

import (
	"context"

	"gorm.io/gorm"

	"train-assist-service/internal/model"
)

type CoachRepository struct {
	db *gorm.DB
}

func NewCoachRepository(db *gorm.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

func (r *CoachRepository) ListByTrain(ctx context.Context, trainID int) ([]model.Coach, error) {
	var coaches []model.Coach
	err := r.db.WithContext(ctx).
		Where("train_id = ?", trainID).
		Order("id").
		Find(&coaches).Error
	if err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *CoachRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Coach{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
