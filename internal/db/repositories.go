package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	TimeEntries    *TimeEntryRepository
	MonthlyReports *MonthlyReportRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		TimeEntries:    NewTimeEntryRepository(database),
		MonthlyReports: NewMonthlyReportRepository(database),
	}
}
