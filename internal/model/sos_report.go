package model

import "time"

type SOSReport struct {
	ID           int       `gorm:"primaryKey"`
	ReporterName string    `gorm:"type:varchar(100);not null"`
	TrainID      *int      `gorm:"index"`
	CoachID      *int      `gorm:"index"`
	Latitude     *float64
	Longitude    *float64
	Message      *string   `gorm:"type:varchar(500)"`
	Timestamp    time.Time `gorm:"not null;index"`

	Train *Train `gorm:"foreignKey:TrainID;constraint:OnDelete:SET NULL"`
	Coach *Coach `gorm:"foreignKey:CoachID;constraint:OnDelete:SET NULL"`
}

func (SOSReport) TableName() string {
	return "sos_reports"
}
