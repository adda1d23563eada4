package models

import "time"

// Gender values accepted for athlete profiles.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Athlete holds the physiological profile of a cyclist. Each athlete is
// backed by exactly one user account.
type Athlete struct {
	ID        int64     `json:"athlete_id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Gender    string    `json:"gender" gorm:"not null"`
	Age       int       `json:"age" gorm:"not null"`
	Weight    float64   `json:"weight" gorm:"not null"`
	Height    float64   `json:"height" gorm:"not null"`
	UserID    int64     `json:"user_id" gorm:"uniqueIndex;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Athlete model.
func (Athlete) TableName() string {
	return "athletes"
}
