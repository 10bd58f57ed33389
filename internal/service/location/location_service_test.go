package location

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/fixtures"
	"github.com/mamadbah2/greenthumb/internal/store"
)

func TestSaveMergesAndStamps(t *testing.T) {
	svc := NewService(store.New(fixtures.MustLoad()).Location, nil, nil)
	stamp := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }
	ctx := context.Background()

	before, err := svc.Get(ctx)
	require.NoError(t, err)

	city := "Oakland"
	zip := "94607"
	saved, err := svc.Save(ctx, models.LocationPatch{City: &city, ZipCode: &zip})
	require.NoError(t, err)

	want := before
	want.City = city
	want.ZipCode = zip
	want.UpdatedAt = stamp
	assert.Equal(t, want, saved)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestLastSaveWins(t *testing.T) {
	svc := NewService(store.New(fixtures.MustLoad()).Location, nil, nil)
	ctx := context.Background()

	first, second := "small", "large"
	_, err := svc.Save(ctx, models.LocationPatch{GardenSize: &first})
	require.NoError(t, err)
	_, err = svc.Save(ctx, models.LocationPatch{GardenSize: &second})
	require.NoError(t, err)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "large", got.GardenSize)
}

func TestCannedAnswersIgnoreInput(t *testing.T) {
	svc := NewService(store.New(nil).Location, nil, nil)
	ctx := context.Background()

	a, err := svc.ReverseGeocode(ctx, 1, 2)
	require.NoError(t, err)
	b, err := svc.ReverseGeocode(ctx, -45, 170)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "San Francisco", a.City)

	w, err := svc.GetWeatherByLocation(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, w.Forecast, 3)

	pos, err := svc.GetCurrentPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, pos.Accuracy)

	hits, err := svc.Search(ctx, "anything")
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}
