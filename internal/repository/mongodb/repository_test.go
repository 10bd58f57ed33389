package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

func TestReportDayKeepsLocalCalendarDay(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	evening := time.Date(2025, 6, 1, 20, 0, 0, 0, la)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), reportDay(evening))
	assert.Equal(t, reportDay(evening), reportDay(evening.Add(-19*time.Hour)))
}

func TestDayFilterMatchesStoredDate(t *testing.T) {
	day := reportDay(time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, bson.M{"date": time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}, dayFilter(day))

	raw, err := bson.Marshal(models.DailyReport{Date: day})
	assert.NoError(t, err)
	var stored bson.M
	assert.NoError(t, bson.Unmarshal(raw, &stored))
	assert.Contains(t, stored, "date")
}

func TestNewestFirstSortsByDateDescending(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "date", Value: -1}}, newestFirst())
}
