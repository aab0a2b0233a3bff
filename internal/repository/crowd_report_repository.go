package repository

import (
	"context"

	"gorm.io/gorm"

	"train-assist-service/internal/model"
)

type CrowdReportRepository struct {
	db *gorm.DB
}

func NewCrowdReportRepository(db *gorm.DB) *CrowdReportRepository {
	return &CrowdReportRepository{db: db}
}

func (r *CrowdReportRepository) Create(ctx context.Context, report *model.CrowdReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// LatestForCoach resolves the most recent report for one coach. Reports
// sharing a timestamp are broken by insertion id so the result is
// deterministic. Returns gorm.ErrRecordNotFound when the coach has no
// reports.
func (r *CrowdReportRepository) LatestForCoach(ctx context.Context, coachID int) (*model.CrowdReport, error) {
	var report model.CrowdReport
	err := r.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Order("timestamp DESC, id DESC").
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}
