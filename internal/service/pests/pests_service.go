package pests

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/store"
)

// OrganicAdvisory heads the treatment list for edible plants.
const OrganicAdvisory = "Use only organic treatments for edible plants"

// ErrEmptyKnowledgeBase is returned when there is nothing to identify against.
var ErrEmptyKnowledgeBase = errors.New("pest knowledge base is empty")

var ediblePlants = []string{"tomato", "lettuce", "pepper", "cucumber"}

// Service identifies pests and diseases from photos against a small
// knowledge base.
type Service struct {
	pests      *store.Collection[models.Pest]
	classifier Classifier
	delay      latency.Simulator
	logger     *zap.Logger
}

// NewService builds the pest service. A nil classifier picks at random.
func NewService(pests *store.Collection[models.Pest], classifier Classifier, delay latency.Simulator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay == nil {
		delay = latency.None()
	}
	if classifier == nil {
		classifier = NewRandomClassifier(nil)
	}
	return &Service{pests: pests, classifier: classifier, delay: delay, logger: logger}
}

// IdentifyFromPhoto narrows the knowledge base to entries common on
// plantType (every entry when plantType is empty or nothing matches) and
// lets the classifier choose among them.
func (s *Service) IdentifyFromPhoto(ctx context.Context, photo []byte, plantType string) (models.PestIdentification, error) {
	if err := s.delay.Wait(ctx, latency.Deep); err != nil {
		return models.PestIdentification{}, err
	}

	all := s.pests.All()
	if len(all) == 0 {
		return models.PestIdentification{}, ErrEmptyKnowledgeBase
	}

	candidates := all
	if plantType != "" {
		candidates = slices.DeleteFunc(slices.Clone(all), func(p models.Pest) bool {
			return !commonOn(p, plantType)
		})
		if len(candidates) == 0 {
			candidates = all
		}
	}

	verdict, err := s.classifier.Classify(ctx, photo, candidates)
	if err != nil {
		return models.PestIdentification{}, fmt.Errorf("classify pest photo: %w", err)
	}

	pest := verdict.Pest
	s.logger.Debug("pest identified",
		zap.String("pest", pest.ID),
		zap.String("plant_type", plantType),
		zap.Float64("confidence", verdict.Confidence))

	return models.PestIdentification{
		ID:              pest.ID,
		Name:            pest.Name,
		Type:            pest.Type,
		Confidence:      verdict.Confidence,
		Symptoms:        slices.Clone(pest.Symptoms),
		Treatments:      tailorTreatments(pest.Treatments, plantType),
		Severity:        pest.Severity,
		Prevention:      pest.Prevention,
		MatchedSymptoms: slices.Clone(pest.Symptoms[:min(2, len(pest.Symptoms))]),
	}, nil
}

// GetTreatmentSuggestions returns a pest entry with treatments tailored to
// plantType and an urgency derived from severity.
func (s *Service) GetTreatmentSuggestions(ctx context.Context, pestID, plantType string) (models.TreatmentPlan, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return models.TreatmentPlan{}, err
	}

	pest, err := s.pests.Get(pestID)
	if err != nil {
		return models.TreatmentPlan{}, err
	}

	return models.TreatmentPlan{
		Pest:             pest,
		CustomTreatments: tailorTreatments(pest.Treatments, plantType),
		Urgency:          urgency(pest.Severity),
	}, nil
}

// GetAll returns the whole knowledge base.
func (s *Service) GetAll(ctx context.Context) ([]models.Pest, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return nil, err
	}
	return s.pests.All(), nil
}

// GetByType returns the entries of one kind, "pest" or "disease".
func (s *Service) GetByType(ctx context.Context, kind string) ([]models.Pest, error) {
	if err := s.delay.Wait(ctx, latency.Light); err != nil {
		return nil, err
	}
	return s.pests.Filter(func(p models.Pest) bool { return p.Type == kind }), nil
}

func commonOn(p models.Pest, plantType string) bool {
	want := strings.ToLower(plantType)
	for _, plant := range p.CommonOn {
		have := strings.ToLower(plant)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return true
		}
	}
	return false
}

func isEdible(plantType string) bool {
	t := strings.ToLower(plantType)
	if t == "" {
		return false
	}
	if strings.Contains(t, "edible") {
		return true
	}
	for _, p := range ediblePlants {
		if strings.Contains(t, p) {
			return true
		}
	}
	return false
}

// tailorTreatments drops non-organic fungicides for edible plants and puts
// the organic advisory first. Other plant types get the list unchanged.
func tailorTreatments(treatments []string, plantType string) []string {
	if !isEdible(plantType) {
		return slices.Clone(treatments)
	}

	out := []string{OrganicAdvisory}
	for _, t := range treatments {
		lower := strings.ToLower(t)
		if !strings.Contains(lower, "fungicide") ||
			strings.Contains(lower, "organic") ||
			strings.Contains(lower, "soap") ||
			strings.Contains(lower, "neem") {
			out = append(out, t)
		}
	}
	return out
}

func urgency(severity string) string {
	switch severity {
	case "high":
		return "immediate"
	case "moderate":
		return "3-5 days"
	default:
		return "1-2 weeks"
	}
}
