package models

type MonthlyReport struct {
	ID                 uint `gorm:"primaryKey" json:"id"`
	UserID             uint `gorm:"not null;uniqueIndex:uidx_monthly_reports_user_month" json:"userId"`
	Year               int  `gorm:"not null;uniqueIndex:uidx_monthly_reports_user_month" json:"year"`
	Month              int  `gorm:"not null;uniqueIndex:uidx_monthly_reports_user_month" json:"month"`
	WorkDays           int  `gorm:"not null" json:"workDays"`
	WorkedMinutes      int  `gorm:"not null;default:0" json:"workedMinutes"`
	TargetMinutes      int  `gorm:"not null" json:"targetMinutes"`
	OvertimeMinutes    int  `gorm:"not null;default:0" json:"overtimeMinutes"`
	VacationDays       int  `gorm:"not null;default:0" json:"vacationDays"`
	CarriedFromMinutes int  `gorm:"not null;default:0" json:"carriedFromMinutes"`
	CarriedToMinutes   int  `gorm:"not null;default:0" json:"carriedToMinutes"`
}
