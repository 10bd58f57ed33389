package gardenbeds

import (
	"context"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/idgen"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/store"
)

// Service manages garden beds.
type Service struct {
	beds   *store.Collection[models.GardenBed]
	ids    idgen.Generator
	delay  latency.Simulator
	logger *zap.Logger
}

// NewService wires a garden bed service.
func NewService(beds *store.Collection[models.GardenBed], ids idgen.Generator, delay latency.Simulator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay == nil {
		delay = latency.None()
	}
	return &Service{beds: beds, ids: ids, delay: delay, logger: logger}
}

// GetAll returns every garden bed in store order.
func (s *Service) GetAll(ctx context.Context) ([]models.GardenBed, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return nil, err
	}
	return s.beds.All(), nil
}

// GetByID returns the bed with id or a NotFoundError.
func (s *Service) GetByID(ctx context.Context, id string) (models.GardenBed, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return models.GardenBed{}, err
	}
	return s.beds.Get(id)
}

// Create stores a new bed under a fresh id.
func (s *Service) Create(ctx context.Context, input models.GardenBed) (models.GardenBed, error) {
	if err := s.delay.Wait(ctx, latency.Write); err != nil {
		return models.GardenBed{}, err
	}
	input.ID = s.ids.NewID()
	created := s.beds.Append(input)
	s.logger.Debug("garden bed created", zap.String("id", created.ID))
	return created, nil
}

// Update merges patch onto the bed with id.
func (s *Service) Update(ctx context.Context, id string, patch models.GardenBedPatch) (models.GardenBed, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return models.GardenBed{}, err
	}
	return s.beds.Replace(id, patch.Apply)
}

// Delete removes a bed. Plants that referenced it keep their GardenBedID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return err
	}
	if err := s.beds.Remove(id); err != nil {
		return err
	}
	s.logger.Debug("garden bed deleted", zap.String("id", id))
	return nil
}
