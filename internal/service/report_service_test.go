package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"train-assist-service/internal/model"
)

func TestSubmitCrowdNormalizesStatus(t *testing.T) {
	database := setupTestDB(t)
	train := createTrain(t, database, "Express 101", "CityA", "CityB")
	coach := createCoach(t, database, train.ID, "S1")

	svc := newReportService(database)

	report, err := svc.SubmitCrowd(context.Background(), coach.ID, "  Asha  ", "low")
	if err != nil {
		t.Fatalf("SubmitCrowd failed: %v", err)
	}

	if report.Status != "Low" {
		t.Errorf("Expected canonical status Low, got %q", report.Status)
	}
	if report.ReporterName != "Asha" {
		t.Errorf("Expected trimmed reporter name, got %q", report.ReporterName)
	}
	if report.Timestamp.IsZero() {
		t.Error("Expected server-set timestamp")
	}

	var stored model.CrowdReport
	if err := database.First(&stored, report.ID).Error; err != nil {
		t.Fatalf("Report not persisted: %v", err)
	}
	if stored.Status != model.CrowdStatusLow {
		t.Errorf("Expected stored status Low, got %q", stored.Status)
	}
}

func TestSubmitCrowdRejectsInvalidStatus(t *testing.T) {
	database := setupTestDB(t)
	train := createTrain(t, database, "Express 101", "CityA", "CityB")
	coach := createCoach(t, database, train.ID, "S1")

	svc := newReportService(database)

	_, err := svc.SubmitCrowd(context.Background(), coach.ID, "Asha", "Urgent")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}

	var count int64
	database.Model(&model.CrowdReport{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no rows created, got %d", count)
	}
}

func TestSubmitCrowdRejectsBlankReporter(t *testing.T) {
	database := setupTestDB(t)
	train := createTrain(t, database, "Express 101", "CityA", "CityB")
	coach := createCoach(t, database, train.ID, "S1")

	svc := newReportService(database)

	_, err := svc.SubmitCrowd(context.Background(), coach.ID, "   ", "Low")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestSubmitCrowdUnknownCoach(t *testing.T) {
	database := setupTestDB(t)
	svc := newReportService(database)

	_, err := svc.SubmitCrowd(context.Background(), 424242, "Asha", "Low")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	var count int64
	database.Model(&model.CrowdReport{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no rows created, got %d", count)
	}
}

func TestSubmitSOSMinimalRequest(t *testing.T) {
	database := setupTestDB(t)
	svc := newReportService(database)

	report, err := svc.SubmitSOS(context.Background(), SubmitSOSInput{ReporterName: "Ravi"})
	if err != nil {
		t.Fatalf("SubmitSOS failed: %v", err)
	}

	if report.ReporterName != "Ravi" {
		t.Errorf("Expected reporter Ravi, got %q", report.ReporterName)
	}
	if report.TrainID != nil || report.CoachID != nil {
		t.Error("Expected nil train and coach references")
	}
	if report.Latitude != nil || report.Longitude != nil || report.Message != nil {
		t.Error("Expected nil location and message")
	}
	if report.Timestamp.IsZero() {
		t.Error("Expected server-set timestamp")
	}
}

func TestSubmitSOSRejectsBlankReporter(t *testing.T) {
	database := setupTestDB(t)
	svc := newReportService(database)

	_, err := svc.SubmitSOS(context.Background(), SubmitSOSInput{ReporterName: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestSubmitSOSUnknownTrain(t *testing.T) {
	database := setupTestDB(t)
	svc := newReportService(database)

	trainID := 9999
	_, err := svc.SubmitSOS(context.Background(), SubmitSOSInput{
		ReporterName: "Ravi",
		TrainID:      &trainID,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSubmitSOSUnknownCoach(t *testing.T) {
	database := setupTestDB(t)
	train := createTrain(t, database, "Express 101", "CityA", "CityB")
	svc := newReportService(database)

	coachID := 9999
	_, err := svc.SubmitSOS(context.Background(), SubmitSOSInput{
		ReporterName: "Ravi",
		TrainID:      &train.ID,
		CoachID:      &coachID,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSubmitSOSTrimsMessage(t *testing.T) {
	database := setupTestDB(t)
	svc := newReportService(database)

	message := "  help near the rear door  "
	report, err := svc.SubmitSOS(context.Background(), SubmitSOSInput{
		ReporterName: "Ravi",
		Message:      &message,
	})
	if err != nil {
		t.Fatalf("SubmitSOS failed: %v", err)
	}
	if report.Message == nil || *report.Message != "help near the rear door" {
		t.Errorf("Expected trimmed message, got %v", report.Message)
	}
}

func TestRecentSOSNewestFirstCappedAt50(t *testing.T) {
	database := setupTestDB(t)
	svc := newReportService(database)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 55; i++ {
		report := model.SOSReport{
			ReporterName: fmt.Sprintf("reporter-%d", i),
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := database.Create(&report).Error; err != nil {
			t.Fatalf("Failed to create SOS report: %v", err)
		}
	}

	reports, err := svc.RecentSOS(context.Background())
	if err != nil {
		t.Fatalf("RecentSOS failed: %v", err)
	}

	if len(reports) != 50 {
		t.Fatalf("Expected 50 reports, got %d", len(reports))
	}
	if reports[0].ReporterName != "reporter-54" {
		t.Errorf("Expected newest report first, got %q", reports[0].ReporterName)
	}
	for i := 1; i < len(reports); i++ {
		if reports[i].Timestamp.After(reports[i-1].Timestamp) {
			t.Fatalf("Reports not in descending timestamp order at index %d", i)
		}
	}
}

func TestSOSReportSurvivesTrainDeletion(t *testing.T) {
	database := setupTestDB(t)
	train := createTrain(t, database, "Express 101", "CityA", "CityB")
	svc := newReportService(database)

	_, err := svc.SubmitSOS(context.Background(), SubmitSOSInput{
		ReporterName: "Ravi",
		TrainID:      &train.ID,
	})
	if err != nil {
		t.Fatalf("SubmitSOS failed: %v", err)
	}

	if err := database.Delete(&model.Train{}, train.ID).Error; err != nil {
		t.Fatalf("Failed to delete train: %v", err)
	}

	reports, err := svc.RecentSOS(context.Background())
	if err != nil {
		t.Fatalf("RecentSOS failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("Expected SOS row to survive train deletion, got %d rows", len(reports))
	}
	if reports[0].TrainID != nil {
		t.Errorf("Expected train reference cleared, got %v", *reports[0].TrainID)
	}
}

func TestTrainDeletionCascadesToCoachesAndReports(t *testing.T) {
	database := setupTestDB(t)
	train := createTrain(t, database, "Express 101", "CityA", "CityB")
	coach := createCoach(t, database, train.ID, "S1")
	createCrowdReport(t, database, coach.ID, model.CrowdStatusLow, time.Now().UTC())

	if err := database.Delete(&model.Train{}, train.ID).Error; err != nil {
		t.Fatalf("Failed to delete train: %v", err)
	}

	var coachCount, reportCount int64
	database.Model(&model.Coach{}).Count(&coachCount)
	database.Model(&model.CrowdReport{}).Count(&reportCount)
	if coachCount != 0 {
		t.Errorf("Expected coaches cascade-deleted, got %d", coachCount)
	}
	if reportCount != 0 {
		t.Errorf("Expected crowd reports cascade-deleted, got %d", reportCount)
	}
}
