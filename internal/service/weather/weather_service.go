package weather

import (
	"context"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/store"
)

// DefaultForecastDays is used when callers pass no forecast length.
const DefaultForecastDays = 7

// Service exposes the static weather snapshot.
type Service struct {
	snapshot *store.Singleton[models.WeatherSnapshot]
	delay    latency.Simulator
	logger   *zap.Logger
}

// NewService builds the weather service over a static snapshot.
func NewService(snapshot *store.Singleton[models.WeatherSnapshot], delay latency.Simulator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay == nil {
		delay = latency.None()
	}
	return &Service{snapshot: snapshot, delay: delay, logger: logger}
}

// GetCurrent returns today's conditions.
func (s *Service) GetCurrent(ctx context.Context) (models.CurrentWeather, error) {
	if err := s.delay.Wait(ctx, latency.Write); err != nil {
		return models.CurrentWeather{}, err
	}
	return s.snapshot.Get().Current, nil
}

// GetForecast returns at most days forecast entries starting today.
func (s *Service) GetForecast(ctx context.Context, days int) ([]models.ForecastDay, error) {
	if err := s.delay.Wait(ctx, latency.Write); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = DefaultForecastDays
	}

	forecast := s.snapshot.Get().Forecast
	if forecast == nil {
		return []models.ForecastDay{}, nil
	}
	return forecast[:min(days, len(forecast))], nil
}

// GetAlerts returns the active weather alerts.
func (s *Service) GetAlerts(ctx context.Context) ([]models.WeatherAlert, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return nil, err
	}
	alerts := s.snapshot.Get().Alerts
	if alerts == nil {
		return []models.WeatherAlert{}, nil
	}
	return alerts, nil
}
