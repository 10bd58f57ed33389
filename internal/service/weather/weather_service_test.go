package weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/greenthumb/internal/fixtures"
	"github.com/mamadbah2/greenthumb/internal/store"
)

func TestForecastSlicing(t *testing.T) {
	svc := NewService(store.New(fixtures.MustLoad()).Weather, nil, nil)
	ctx := context.Background()

	three, err := svc.GetForecast(ctx, 3)
	require.NoError(t, err)
	require.Len(t, three, 3)
	assert.Equal(t, "sunny", three[0].Condition)

	all, err := svc.GetForecast(ctx, 30)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	defaulted, err := svc.GetForecast(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, defaulted, DefaultForecastDays)

	three[0].Condition = "snow"
	again, err := svc.GetForecast(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "sunny", again[0].Condition)
}

func TestCurrentAndAlerts(t *testing.T) {
	svc := NewService(store.New(fixtures.MustLoad()).Weather, nil, nil)
	ctx := context.Background()

	cur, err := svc.GetCurrent(ctx)
	require.NoError(t, err)
	assert.Equal(t, 72, cur.Temperature.Current)

	alerts, err := svc.GetAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "rain", alerts[0].Type)
}

func TestEmptySnapshot(t *testing.T) {
	svc := NewService(store.New(nil).Weather, nil, nil)

	forecast, err := svc.GetForecast(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, forecast)
	assert.Empty(t, forecast)

	alerts, err := svc.GetAlerts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, alerts)
}
