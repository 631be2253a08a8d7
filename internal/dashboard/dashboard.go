package dashboard

import "time"

// Stats is the coach's landing page summary.
type Stats struct {
	TotalAthletes       int `json:"totalAthletes"`
	TodayTrainings      int `json:"todayTrainings"`
	MonthlyTrainings    int `json:"monthlyTrainings"`
	NewAthletesLastWeek int `json:"newAthletesLastWeek"`
}

type Metrics struct {
	TotalAthletes     int            `json:"totalAthletes"`
	TotalTrainings    int            `json:"totalTrainings"`
	TotalIncidents    int            `json:"totalIncidents"`
	TrainingsByStatus map[string]int `json:"trainingsByStatus"`
	IncidentsByType   map[string]int `json:"incidentsByType"`
}

// Window holds the half-open [start, end) ranges the stats are counted in.
type Window struct {
	DayStart   time.Time
	DayEnd     time.Time
	MonthStart time.Time
	MonthEnd   time.Time
	// athletes created at or after NewSince count as new
	NewSince time.Time
}

// WindowAt builds the day and month ranges around now, in now's location.
func WindowAt(now time.Time) Window {
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	return Window{
		DayStart:   dayStart,
		DayEnd:     dayStart.AddDate(0, 0, 1),
		MonthStart: monthStart,
		MonthEnd:   monthStart.AddDate(0, 1, 0),
		NewSince:   now.AddDate(0, 0, -7),
	}
}
