package location

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/store"
)

// Service keeps the gardener's saved location. Geocoding and local weather
// are canned answers that ignore their inputs.
type Service struct {
	location *store.Singleton[models.Location]
	delay    latency.Simulator
	logger   *zap.Logger
	now      func() time.Time
}

// NewService builds the location service over the saved location.
func NewService(location *store.Singleton[models.Location], delay latency.Simulator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay == nil {
		delay = latency.None()
	}
	return &Service{location: location, delay: delay, logger: logger, now: time.Now}
}

// Get returns the saved garden location.
func (s *Service) Get(ctx context.Context) (models.Location, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return models.Location{}, err
	}
	return s.location.Get(), nil
}

// Save merges patch into the saved location and stamps UpdatedAt. The last
// save to complete wins.
func (s *Service) Save(ctx context.Context, patch models.LocationPatch) (models.Location, error) {
	if err := s.delay.Wait(ctx, latency.Heavy); err != nil {
		return models.Location{}, err
	}

	updatedAt := s.now().UTC()
	saved := s.location.Update(func(l models.Location) models.Location {
		l = patch.Apply(l)
		l.UpdatedAt = updatedAt
		return l
	})
	s.logger.Debug("location saved", zap.String("city", saved.City))
	return saved, nil
}

// GetCurrentPosition returns the device position.
func (s *Service) GetCurrentPosition(ctx context.Context) (models.Position, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return models.Position{}, err
	}
	return models.Position{Latitude: 37.7749, Longitude: -122.4194, Accuracy: 10}, nil
}

// ReverseGeocode resolves a coordinate to an address.
func (s *Service) ReverseGeocode(ctx context.Context, _, _ float64) (models.Address, error) {
	if err := s.delay.Wait(ctx, latency.Heavy); err != nil {
		return models.Address{}, err
	}
	return models.Address{
		Address:  "123 Garden Street",
		City:     "San Francisco",
		State:    "CA",
		ZipCode:  "94107",
		Country:  "United States",
		Timezone: "America/Los_Angeles",
	}, nil
}

// GetWeatherByLocation returns the short local forecast for a coordinate.
func (s *Service) GetWeatherByLocation(ctx context.Context, _, _ float64) (models.LocalWeather, error) {
	if err := s.delay.Wait(ctx, latency.Write); err != nil {
		return models.LocalWeather{}, err
	}
	return models.LocalWeather{
		Temperature: 72,
		Condition:   "sunny",
		Humidity:    65,
		WindSpeed:   8,
		Forecast: []models.LocalForecastDay{
			{Day: "Today", High: 75, Low: 62, Condition: "sunny"},
			{Day: "Tomorrow", High: 73, Low: 60, Condition: "partly-cloudy"},
			{Day: "Wednesday", High: 70, Low: 58, Condition: "cloudy"},
		},
	}, nil
}

// Search returns candidate places for a free-text query.
func (s *Service) Search(ctx context.Context, _ string) ([]models.PlaceMatch, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return nil, err
	}
	return []models.PlaceMatch{
		{Address: "123 Garden Street, San Francisco, CA 94107", Latitude: 37.7749, Longitude: -122.4194},
		{Address: "456 Plant Avenue, San Francisco, CA 94108", Latitude: 37.7849, Longitude: -122.4094},
	}, nil
}
