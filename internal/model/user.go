package model

import "github.com/google/uuid"

// User backs the app's profile screen. No endpoint serves it yet; the table
// is migrated so mobile builds that register users keep working against it.
type User struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name  string    `gorm:"type:varchar(100);not null"`
	Phone *string   `gorm:"type:varchar(20)"`
}

func (User) TableName() string {
	return "users"
}
