package plants

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/idgen"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/store"
)

// Service manages the plants in the garden.
type Service struct {
	plants     *store.Collection[models.Plant]
	ids        idgen.Generator
	delay      latency.Simulator
	classifier Classifier
	logger     *zap.Logger
	now        func() time.Time
}

// NewService wires a plant service over the given collection.
func NewService(plants *store.Collection[models.Plant], ids idgen.Generator, delay latency.Simulator, classifier Classifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay == nil {
		delay = latency.None()
	}
	return &Service{
		plants:     plants,
		ids:        ids,
		delay:      delay,
		classifier: classifier,
		logger:     logger,
		now:        time.Now,
	}
}

// GetAll returns every plant in store order.
func (s *Service) GetAll(ctx context.Context) ([]models.Plant, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return nil, err
	}
	return s.plants.All(), nil
}

// GetByID returns a single plant.
func (s *Service) GetByID(ctx context.Context, id string) (models.Plant, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return models.Plant{}, err
	}
	return s.plants.Get(id)
}

// GetByGardenBed returns the plants growing in one bed.
func (s *Service) GetByGardenBed(ctx context.Context, gardenBedID string) ([]models.Plant, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return nil, err
	}
	return s.plants.Filter(func(p models.Plant) bool { return p.GardenBedID == gardenBedID }), nil
}

// Create stores a new plant. The id is always assigned here; PlantedDate
// defaults to now when the caller leaves it unset.
func (s *Service) Create(ctx context.Context, input models.Plant) (models.Plant, error) {
	if err := s.delay.Wait(ctx, latency.Write); err != nil {
		return models.Plant{}, err
	}

	input.ID = s.ids.NewID()
	if input.PlantedDate.IsZero() {
		input.PlantedDate = s.now().UTC()
	}

	created := s.plants.Append(input)
	s.logger.Debug("plant created", zap.String("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// Update merges patch into the stored plant.
func (s *Service) Update(ctx context.Context, id string, patch models.PlantPatch) (models.Plant, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return models.Plant{}, err
	}

	updated, err := s.plants.Replace(id, patch.Apply)
	if err != nil {
		return models.Plant{}, err
	}
	s.logger.Debug("plant updated", zap.String("id", id))
	return updated, nil
}

// Delete removes a plant. Care tasks and harvests referencing it are left
// in place.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return err
	}
	if err := s.plants.Remove(id); err != nil {
		return err
	}
	s.logger.Debug("plant deleted", zap.String("id", id))
	return nil
}

// IdentifyFromPhoto asks the classifier what plant is in the photo.
func (s *Service) IdentifyFromPhoto(ctx context.Context, photo []byte) (models.PlantIdentification, error) {
	if err := s.delay.Wait(ctx, latency.Analysis); err != nil {
		return models.PlantIdentification{}, err
	}
	if s.classifier == nil {
		return models.PlantIdentification{}, ErrNoCandidates
	}

	result, err := s.classifier.Classify(ctx, photo)
	if err != nil {
		return models.PlantIdentification{}, fmt.Errorf("identify plant: %w", err)
	}
	s.logger.Debug("plant identified", zap.String("name", result.Name), zap.Float64("confidence", result.Confidence))
	return result, nil
}
