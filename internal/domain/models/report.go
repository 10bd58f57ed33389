package models

import "time"

// DailyReport is the garden summary produced by the nightly job and
// archived in MongoDB.
type DailyReport struct {
	Date           time.Time `bson:"date" json:"date"`
	Plants         int       `bson:"plants" json:"plants"`
	GardenBeds     int       `bson:"garden_beds" json:"garden_beds"`
	TasksDueToday  int       `bson:"tasks_due_today" json:"tasks_due_today"`
	TasksOverdue   int       `bson:"tasks_overdue" json:"tasks_overdue"`
	TasksUpcoming  int       `bson:"tasks_upcoming" json:"tasks_upcoming"`
	TasksCompleted int       `bson:"tasks_completed" json:"tasks_completed"`
	HarvestsLogged int       `bson:"harvests_logged" json:"harvests_logged"`
	HarvestQuality float64   `bson:"harvest_quality" json:"harvest_quality"`
	WeatherSummary string    `bson:"weather_summary" json:"weather_summary"`
	ActiveAlerts   int       `bson:"active_alerts" json:"active_alerts"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
