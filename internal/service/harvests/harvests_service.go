package harvests

import (
	"context"
	"math"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/idgen"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/store"
)

// Service records harvests and summarizes yields.
type Service struct {
	harvests *store.Collection[models.Harvest]
	ids      idgen.Generator
	delay    latency.Simulator
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a harvest service.
func NewService(harvests *store.Collection[models.Harvest], ids idgen.Generator, delay latency.Simulator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay == nil {
		delay = latency.None()
	}
	return &Service{harvests: harvests, ids: ids, delay: delay, logger: logger, now: time.Now}
}

// GetAll returns every harvest in store order.
func (s *Service) GetAll(ctx context.Context) ([]models.Harvest, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return nil, err
	}
	return s.harvests.All(), nil
}

// GetByID returns the harvest with id or a NotFoundError.
func (s *Service) GetByID(ctx context.Context, id string) (models.Harvest, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return models.Harvest{}, err
	}
	return s.harvests.Get(id)
}

// GetByPlant returns the harvests of one plant, most recent first.
func (s *Service) GetByPlant(ctx context.Context, plantID string) ([]models.Harvest, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return nil, err
	}
	out := s.harvests.Filter(func(h models.Harvest) bool { return h.PlantID == plantID })
	sortNewestFirst(out)
	return out, nil
}

// Create stores a new harvest; HarvestDate defaults to now when unset.
// Yield and rating are stored as given.
func (s *Service) Create(ctx context.Context, input models.Harvest) (models.Harvest, error) {
	if err := s.delay.Wait(ctx, latency.Write); err != nil {
		return models.Harvest{}, err
	}

	input.ID = s.ids.NewID()
	if input.HarvestDate.IsZero() {
		input.HarvestDate = s.now().UTC()
	}
	if input.Photos == nil {
		input.Photos = []string{}
	}

	created := s.harvests.Append(input)
	s.logger.Debug("harvest logged",
		zap.String("id", created.ID),
		zap.String("plant_id", created.PlantID),
		zap.Float64("yield", created.YieldAmount),
		zap.String("unit", string(created.YieldUnit)))
	return created, nil
}

// Update merges patch onto the harvest with id.
func (s *Service) Update(ctx context.Context, id string, patch models.HarvestPatch) (models.Harvest, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return models.Harvest{}, err
	}
	return s.harvests.Replace(id, patch.Apply)
}

// Delete removes the harvest with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return err
	}
	return s.harvests.Remove(id)
}

// GetHarvestStats aggregates every harvest of a plant. A plant without
// harvests yields zero totals and a nil LastHarvest rather than an error.
func (s *Service) GetHarvestStats(ctx context.Context, plantID string) (models.HarvestStats, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return models.HarvestStats{}, err
	}

	list := s.harvests.Filter(func(h models.Harvest) bool { return h.PlantID == plantID })
	return Summarize(list), nil
}

// Summarize computes harvest statistics over list: yield rounded to two
// decimals and mean quality to one.
func Summarize(list []models.Harvest) models.HarvestStats {
	if len(list) == 0 {
		return models.HarvestStats{}
	}

	var totalYield float64
	var totalQuality int
	last := list[0].HarvestDate
	for _, h := range list {
		totalYield += h.YieldAmount
		totalQuality += h.QualityRating
		if h.HarvestDate.After(last) {
			last = h.HarvestDate
		}
	}

	return models.HarvestStats{
		TotalHarvests:  len(list),
		TotalYield:     round(totalYield, 2),
		AverageQuality: round(float64(totalQuality)/float64(len(list)), 1),
		LastHarvest:    &last,
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func sortNewestFirst(list []models.Harvest) {
	slices.SortStableFunc(list, func(a, b models.Harvest) int {
		return b.HarvestDate.Compare(a.HarvestDate)
	})
}
