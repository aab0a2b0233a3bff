package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"train-assist-service/internal/model"
	"train-assist-service/internal/repository"
)

type TrainService struct {
	trainRepo *repository.TrainRepository
	coachRepo *repository.CoachRepository
	crowdRepo *repository.CrowdReportRepository
}

func NewTrainService(
	trainRepo *repository.TrainRepository,
	coachRepo *repository.CoachRepository,
	crowdRepo *repository.CrowdReportRepository,
) *TrainService {
	return &TrainService{
		trainRepo: trainRepo,
		coachRepo: coachRepo,
		crowdRepo: crowdRepo,
	}
}

func (s *TrainService) Search(ctx context.Context, source, destination string) ([]model.TrainResponse, error) {
	trains, err := s.trainRepo.Search(ctx, repository.TrainFilter{
		Source:      source,
		Destination: destination,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]model.TrainResponse, 0, len(trains))
	for _, train := range trains {
		responses = append(responses, model.NewTrainResponse(train))
	}
	return responses, nil
}

// CoachStatuses lists a train's coaches with the status of each coach's
// most recent crowd report. A coach with no reports yet is reported as
// Unknown with no timestamp or reporter.
func (s *TrainService) CoachStatuses(ctx context.Context, trainID int) ([]model.CoachStatus, error) {
	exists, err := s.trainRepo.Exists(ctx, trainID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	coaches, err := s.coachRepo.ListByTrain(ctx, trainID)
	if err != nil {
		return nil, err
	}

	statuses := make([]model.CoachStatus, 0, len(coaches))
	for _, coach := range coaches {
		entry := model.CoachStatus{
			CoachID:      coach.ID,
			CoachName:    coach.CoachName,
			LatestStatus: model.StatusUnknown,
		}

		latest, err := s.crowdRepo.LatestForCoach(ctx, coach.ID)
		switch {
		case err == nil:
			entry.LatestStatus = string(latest.Status)
			entry.LastReportedAt = &latest.Timestamp
			entry.LastReporterName = &latest.ReporterName
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no reports yet, keep the Unknown entry
		default:
			return nil, err
		}

		statuses = append(statuses, entry)
	}

	return statuses, nil
}
