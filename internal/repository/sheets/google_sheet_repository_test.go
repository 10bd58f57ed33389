package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

func TestReportRow(t *testing.T) {
	row := ReportRow(models.DailyReport{
		Date:           time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
		Plants:         6,
		GardenBeds:     3,
		TasksDueToday:  1,
		TasksOverdue:   2,
		TasksUpcoming:  4,
		TasksCompleted: 1,
		HarvestsLogged: 2,
		HarvestQuality: 4.5,
		WeatherSummary: "sunny 72F",
		ActiveAlerts:   1,
	})

	assert.Equal(t, []interface{}{"2025-06-01", 6, 3, 1, 2, 4, 1, 2, 4.5, "sunny 72F", 1}, row)
}
