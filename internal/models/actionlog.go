package models

import "time"

// ActionLog is an append-only audit record of authentication and account
// events. UserID is nil for events with no resolved identity, such as a
// failed login.
type ActionLog struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Action    string    `json:"action" gorm:"not null;index"`
	UserID    *int64    `json:"user_id" gorm:"column:user_id"`
	Source    string    `json:"source" gorm:"not null"`
	Details   string    `json:"details" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for the ActionLog model.
func (ActionLog) TableName() string {
	return "action_logs"
}
