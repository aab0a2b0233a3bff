package repository

import (
	"context"

	"gorm.io/gorm"

	"train-assist-service/internal/model"
)

type SOSReportRepository struct {
	db *gorm.DB
}

func NewSOSReportRepository(db *gorm.DB) *SOSReportRepository {
	return &SOSReportRepository{db: db}
}

func (r *SOSReportRepository) Create(ctx context.Context, report *model.SOSReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *SOSReportRepository) ListRecent(ctx context.Context, limit int) ([]model.SOSReport, error) {
	var reports []model.SOSReport
	err := r.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
