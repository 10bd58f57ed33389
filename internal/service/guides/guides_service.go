package guides

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/store"
)

// Service serves the read-only gardening guides.
type Service struct {
	guides *store.Collection[models.Guide]
	delay  latency.Simulator
	logger *zap.Logger
}

// NewService builds the read-only guide catalog service.
func NewService(guides *store.Collection[models.Guide], delay latency.Simulator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay == nil {
		delay = latency.None()
	}
	return &Service{guides: guides, delay: delay, logger: logger}
}

// GetAll returns every guide in store order.
func (s *Service) GetAll(ctx context.Context) ([]models.Guide, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return nil, err
	}
	return s.guides.All(), nil
}

// GetByID returns the guide with id or a NotFoundError.
func (s *Service) GetByID(ctx context.Context, id string) (models.Guide, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return models.Guide{}, err
	}
	return s.guides.Get(id)
}

// GetByCategory returns the guides filed under category exactly.
func (s *Service) GetByCategory(ctx context.Context, category string) ([]models.Guide, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return nil, err
	}
	return s.guides.Filter(func(g models.Guide) bool { return g.Category == category }), nil
}

// Search matches query case-insensitively against title, description and
// tags.
func (s *Service) Search(ctx context.Context, query string) ([]models.Guide, error) {
	if err := s.delay.Wait(ctx, latency.Write); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	return s.guides.Filter(func(g models.Guide) bool {
		if strings.Contains(strings.ToLower(g.Title), q) || strings.Contains(strings.ToLower(g.Description), q) {
			return true
		}
		for _, tag := range g.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	}), nil
}
