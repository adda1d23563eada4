package models

import "time"

// Performance records the results of one physiological test session for an
// athlete: maximal oxygen uptake, heart rate and breathing ceilings, peak
// power output, and the three incremental power steps of the protocol.
type Performance struct {
	ID         int64     `json:"performance_id" gorm:"primaryKey"`
	VO2Max     float64   `json:"vo2max" gorm:"column:vo2max;not null"`
	HRMax      float64   `json:"hr_max" gorm:"column:hr_max;not null"`
	RFMax      float64   `json:"rf_max" gorm:"column:rf_max;not null"`
	CadenceMax float64   `json:"cadence_max" gorm:"column:cadence_max;not null"`
	PPO        float64   `json:"ppo" gorm:"column:ppo;not null"`
	P1         float64   `json:"p1" gorm:"column:p1;not null"`
	P2         float64   `json:"p2" gorm:"column:p2;not null"`
	P3         float64   `json:"p3" gorm:"column:p3;not null"`
	AthleteID  int64     `json:"athlete_id" gorm:"not null"`
	Athlete    Athlete   `json:"-" gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Performance model.
func (Performance) TableName() string {
	return "performances"
}
