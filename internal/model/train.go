package model

type Train struct {
	ID          int     `gorm:"primaryKey"`
	TrainName   string  `gorm:"type:varchar(100);not null"`
	Source      string  `gorm:"type:varchar(100);not null;index"`
	Destination string  `gorm:"type:varchar(100);not null;index"`
	Timing      string  `gorm:"type:varchar(10);not null"`
	Platform    *string `gorm:"type:varchar(10)"`

	Coaches []Coach `gorm:"foreignKey:TrainID;constraint:OnDelete:CASCADE"`
}

func (Train) TableName() string {
	return "trains"
}

type Coach struct {
	ID        int    `gorm:"primaryKey"`
	TrainID   int    `gorm:"not null;index"`
	CoachName string `gorm:"type:varchar(10);not null"`

	Train        *Train        `gorm:"foreignKey:TrainID"`
	CrowdReports []CrowdReport `gorm:"foreignKey:CoachID;constraint:OnDelete:CASCADE"`
}

func (Coach) TableName() string {
	return "coaches"
}
