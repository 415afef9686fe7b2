package models

import "time"

const (
	DefaultWorkHoursPerDay = 8
	DefaultBreakMinutes    = 60
)

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Position        string    `json:"position"`
	WorkHoursPerDay int       `gorm:"not null;default:8" json:"workHoursPerDay"`
	WorkDays        WorkDays  `gorm:"type:text;not null;default:'1,2,3,4,5'" json:"workDays"`
	BreakMinutes    int       `gorm:"not null;default:60" json:"breakMinutes"`
	AutoBreak       bool      `gorm:"not null" json:"autoBreak"`
	BestStreak      int       `gorm:"not null;default:0" json:"bestStreak"`
	CreatedAt       time.Time `gorm:"not null" json:"createdAt"`
}

// NewUser returns a user carrying the default work settings.
func NewUser(username string, passwordHash string) User {
	return User{
		Username:        username,
		PasswordHash:    passwordHash,
		WorkHoursPerDay: DefaultWorkHoursPerDay,
		WorkDays:        DefaultWorkDays(),
		BreakMinutes:    DefaultBreakMinutes,
		AutoBreak:       true,
	}
}
