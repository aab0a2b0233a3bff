package model

import (
	"fmt"
	"strings"
	"time"
)

type CrowdStatus string

const (
	CrowdStatusLow    CrowdStatus = "Low"
	CrowdStatusMedium CrowdStatus = "Medium"
	CrowdStatusHigh   CrowdStatus = "High"
)

// StatusUnknown is reported for coaches with no crowd reports yet.
// It is not a valid CrowdStatus and is never persisted.
const StatusUnknown = "Unknown"

// ParseCrowdStatus matches the input case-insensitively against the three
// crowd levels and returns the canonical value.
func ParseCrowdStatus(raw string) (CrowdStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return CrowdStatusLow, nil
	case "medium":
		return CrowdStatusMedium, nil
	case "high":
		return CrowdStatusHigh, nil
	default:
		return "", fmt.Errorf("status must be 'Low', 'Medium', or 'High', got %q", raw)
	}
}

type CrowdReport struct {
	ID           int         `gorm:"primaryKey"`
	CoachID      int         `gorm:"not null;index"`
	ReporterName string      `gorm:"type:varchar(100);not null"`
	Status       CrowdStatus `gorm:"type:varchar(20);not null"`
	Timestamp    time.Time   `gorm:"not null;index"`

	Coach *Coach `gorm:"foreignKey:CoachID"`
}

func (CrowdReport) TableName() string {
	return "crowd_reports"
}
