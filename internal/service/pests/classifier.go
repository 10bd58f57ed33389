package pests

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

// Classification is a classifier's verdict: which pest and how sure.
type Classification struct {
	Pest       models.Pest
	Confidence float64
}

// Classifier picks the pest visible in a photo among candidates. Callers
// always pass at least one candidate.
type Classifier interface {
	Classify(ctx context.Context, photo []byte, candidates []models.Pest) (Classification, error)
}

// RandomClassifier ignores the photo, picks a candidate uniformly and
// reports a confidence between 0.70 and 1.00.
type RandomClassifier struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomClassifier uses rng, or a randomly seeded source when nil.
func NewRandomClassifier(rng *rand.Rand) *RandomClassifier {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomClassifier{rng: rng}
}

// Classify implements Classifier.
func (c *RandomClassifier) Classify(ctx context.Context, _ []byte, candidates []models.Pest) (Classification, error) {
	if err := ctx.Err(); err != nil {
		return Classification{}, err
	}
	if len(candidates) == 0 {
		return Classification{}, ErrEmptyKnowledgeBase
	}

	c.mu.Lock()
	idx := c.rng.IntN(len(candidates))
	confidence := c.rng.Float64()*0.3 + 0.7
	c.mu.Unlock()

	return Classification{
		Pest:       candidates[idx].Clone(),
		Confidence: math.Round(confidence*100) / 100,
	}, nil
}
