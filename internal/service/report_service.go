package service

import (
	"context"
	"strings"
	"time"

	"train-assist-service/internal/model"
	"train-assist-service/internal/repository"
)

const recentSOSLimit = 50

type ReportService struct {
	trainRepo *repository.TrainRepository
	coachRepo *repository.CoachRepository
	crowdRepo *repository.CrowdReportRepository
	sosRepo   *repository.SOSReportRepository
}

func NewReportService(
	trainRepo *repository.TrainRepository,
	coachRepo *repository.CoachRepository,
	crowdRepo *repository.CrowdReportRepository,
	sosRepo *repository.SOSReportRepository,
) *ReportService {
	return &ReportService{
		trainRepo: trainRepo,
		coachRepo: coachRepo,
		crowdRepo: crowdRepo,
		sosRepo:   sosRepo,
	}
}

// SubmitCrowd records a crowd level for a coach. The status is matched
// case-insensitively and stored in its canonical casing; the timestamp is
// assigned here, never taken from the client.
func (s *ReportService) SubmitCrowd(ctx context.Context, coachID int, reporterName, status string) (*model.CrowdReportResponse, error) {
	exists, err := s.coachRepo.Exists(ctx, coachID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	reporterName = strings.TrimSpace(reporterName)
	if reporterName == "" {
		return nil, ErrInvalidInput
	}

	crowdStatus, err := model.ParseCrowdStatus(status)
	if err != nil {
		return nil, ErrInvalidInput
	}

	report := &model.CrowdReport{
		CoachID:      coachID,
		ReporterName: reporterName,
		Status:       crowdStatus,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.crowdRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	response := model.NewCrowdReportResponse(*report)
	return &response, nil
}

type SubmitSOSInput struct {
	ReporterName string
	TrainID      *int
	CoachID      *int
	Latitude     *float64
	Longitude    *float64
	Message      *string
}

// SubmitSOS records an emergency report. Train and coach references are
// optional but must point at existing rows when given. Latitude and
// longitude ranges are enforced at the HTTP binding.
func (s *ReportService) SubmitSOS(ctx context.Context, input SubmitSOSInput) (*model.SOSReportResponse, error) {
	reporterName := strings.TrimSpace(input.ReporterName)
	if reporterName == "" {
		return nil, ErrInvalidInput
	}

	if input.TrainID != nil {
		exists, err := s.trainRepo.Exists(ctx, *input.TrainID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrNotFound
		}
	}
	if input.CoachID != nil {
		exists, err := s.coachRepo.Exists(ctx, *input.CoachID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrNotFound
		}
	}

	var message *string
	if input.Message != nil {
		trimmed := strings.TrimSpace(*input.Message)
		message = &trimmed
	}

	report := &model.SOSReport{
		ReporterName: reporterName,
		TrainID:      input.TrainID,
		CoachID:      input.CoachID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Message:      message,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.sosRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	response := model.NewSOSReportResponse(*report)
	return &response, nil
}

func (s *ReportService) RecentSOS(ctx context.Context) ([]model.SOSReportResponse, error) {
	reports, err := s.sosRepo.ListRecent(ctx, recentSOSLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]model.SOSReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, model.NewSOSReportResponse(report))
	}
	return responses, nil
}
