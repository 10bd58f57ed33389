package plants

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

// Classifier identifies a plant from photo bytes.
type Classifier interface {
	Classify(ctx context.Context, photo []byte) (models.PlantIdentification, error)
}

// ErrNoCandidates is returned when a classifier has nothing to choose from.
var ErrNoCandidates = errors.New("no plant identifications available")

// RandomClassifier ignores the photo and answers with one of a fixed set
// of canned identifications. It stands in for a real vision model.
type RandomClassifier struct {
	mu         sync.Mutex
	candidates []models.PlantIdentification
	rng        *rand.Rand
}

// NewRandomClassifier copies candidates; rng may be nil to use a randomly
// seeded source.
func NewRandomClassifier(candidates []models.PlantIdentification, rng *rand.Rand) *RandomClassifier {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	copied := make([]models.PlantIdentification, 0, len(candidates))
	for _, c := range candidates {
		copied = append(copied, c.Clone())
	}
	return &RandomClassifier{candidates: copied, rng: rng}
}

// Classify implements Classifier.
func (c *RandomClassifier) Classify(ctx context.Context, _ []byte) (models.PlantIdentification, error) {
	if err := ctx.Err(); err != nil {
		return models.PlantIdentification{}, err
	}
	if len(c.candidates) == 0 {
		return models.PlantIdentification{}, ErrNoCandidates
	}

	c.mu.Lock()
	idx := c.rng.IntN(len(c.candidates))
	c.mu.Unlock()

	return c.candidates[idx].Clone(), nil
}
