package db

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"train-assist-service/internal/model"
)

var seedStatuses = []model.CrowdStatus{
	model.CrowdStatusLow,
	model.CrowdStatusMedium,
	model.CrowdStatusHigh,
}

// Seed populates an empty database with baseline trains, coaches and one
// crowd report per coach. It is a no-op once any train row exists.
func Seed(db *gorm.DB, log zerolog.Logger) error {
	var trainCount int64
	if err := db.Model(&model.Train{}).Count(&trainCount).Error; err != nil {
		return fmt.Errorf("count trains: %w", err)
	}
	if trainCount > 0 {
		log.Debug().Msg("database already seeded, skipping")
		return nil
	}

	trains := []model.Train{
		{TrainName: "Express 101", Source: "CityA", Destination: "CityB", Timing: "07:30", Platform: ptr("3")},
		{TrainName: "InterCity 202", Source: "CityA", Destination: "CityC", Timing: "09:15", Platform: ptr("1")},
		{TrainName: "Local 303", Source: "CityB", Destination: "CityD", Timing: "12:00", Platform: ptr("2")},
	}
	if err := db.Create(&trains).Error; err != nil {
		return fmt.Errorf("seed trains: %w", err)
	}

	var coaches []model.Coach
	for _, train := range trains {
		for i := 1; i <= 3; i++ {
			coaches = append(coaches, model.Coach{
				TrainID:   train.ID,
				CoachName: fmt.Sprintf("S%d", i),
			})
		}
	}
	if err := db.Create(&coaches).Error; err != nil {
		return fmt.Errorf("seed coaches: %w", err)
	}

	reports := make([]model.CrowdReport, 0, len(coaches))
	for i, coach := range coaches {
		reports = append(reports, model.CrowdReport{
			CoachID:      coach.ID,
			ReporterName: "System",
			Status:       seedStatuses[i%len(seedStatuses)],
			Timestamp:    time.Now().UTC().Add(-time.Duration(1+rand.Intn(5)) * time.Hour),
		})
	}
	if err := db.Create(&reports).Error; err != nil {
		return fmt.Errorf("seed crowd reports: %w", err)
	}

	log.Info().
		Int("trains", len(trains)).
		Int("coaches", len(coaches)).
		Int("crowd_reports", len(reports)).
		Msg("seeded baseline data")

	return nil
}

func ptr(s string) *string {
	return &s
}
