package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"train-assist-service/internal/model"
)

type TrainRepository struct {
	db *gorm.DB
}

func NewTrainRepository(db *gorm.DB) *TrainRepository {
	return &TrainRepository{db: db}
}

type TrainFilter struct {
	Source      string
	Destination string
}

// Search applies case-insensitive substring filters on source and
// destination. Blank filters are ignored; both given means both must match.
func (r *TrainRepository) Search(ctx context.Context, filter TrainFilter) ([]model.Train, error) {
	query := r.db.WithContext(ctx).Model(&model.Train{})

	if source := strings.TrimSpace(filter.Source); source != "" {
		query = query.Where("LOWER(source) LIKE ?", "%"+strings.ToLower(source)+"%")
	}
	if destination := strings.TrimSpace(filter.Destination); destination != "" {
		query = query.Where("LOWER(destination) LIKE ?", "%"+strings.ToLower(destination)+"%")
	}

	var trains []model.Train
	if err := query.Find(&trains).Error; err != nil {
		return nil, err
	}
	return trains, nil
}

func (r *TrainRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Train{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
