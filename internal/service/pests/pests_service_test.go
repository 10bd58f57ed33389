package pests

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/fixtures"
	"github.com/mamadbah2/greenthumb/internal/store"
)

// recordingClassifier picks the candidate with the given id (or the first)
// and remembers what it was offered.
type recordingClassifier struct {
	pick    string
	offered []string
}

func (r *recordingClassifier) Classify(_ context.Context, _ []byte, candidates []models.Pest) (Classification, error) {
	r.offered = r.offered[:0]
	chosen := candidates[0]
	for _, c := range candidates {
		r.offered = append(r.offered, c.ID)
		if c.ID == r.pick {
			chosen = c
		}
	}
	return Classification{Pest: chosen, Confidence: 0.9}, nil
}

func newTestService(c Classifier) *Service {
	return NewService(store.New(fixtures.MustLoad()).Pests, c, nil, nil)
}

func TestIdentifyFiltersByPlantType(t *testing.T) {
	rec := &recordingClassifier{}
	svc := newTestService(rec)

	_, err := svc.IdentifyFromPhoto(context.Background(), nil, "Cucumber")
	require.NoError(t, err)
	assert.Equal(t, []string{"powdery_mildew", "whitefly"}, rec.offered)

	// substring match works in both directions
	_, err = svc.IdentifyFromPhoto(context.Background(), nil, "cherry tomatoes")
	require.NoError(t, err)
	assert.Len(t, rec.offered, 5)

	_, err = svc.IdentifyFromPhoto(context.Background(), nil, "bea")
	require.NoError(t, err)
	assert.Equal(t, []string{"spider_mites"}, rec.offered)
}

func TestIdentifyFallsBackToWholeBase(t *testing.T) {
	rec := &recordingClassifier{}
	svc := newTestService(rec)

	_, err := svc.IdentifyFromPhoto(context.Background(), nil, "orchid")
	require.NoError(t, err)
	assert.Len(t, rec.offered, 5)

	_, err = svc.IdentifyFromPhoto(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Len(t, rec.offered, 5)
}

func TestIdentifyTomatoWithRandomClassifier(t *testing.T) {
	svc := newTestService(NewRandomClassifier(rand.New(rand.NewPCG(7, 11))))

	for i := 0; i < 25; i++ {
		got, err := svc.IdentifyFromPhoto(context.Background(), []byte("img"), "tomato")
		require.NoError(t, err)
		assert.Contains(t, []string{"pest", "disease"}, got.Type)
		assert.NotEmpty(t, got.Treatments)
		assert.GreaterOrEqual(t, got.Confidence, 0.70)
		assert.LessOrEqual(t, got.Confidence, 1.00)
		assert.Equal(t, got.Symptoms[:2], got.MatchedSymptoms)
	}
}

func TestIdentifyEdiblePrependsAdvisory(t *testing.T) {
	svc := newTestService(&recordingClassifier{pick: "leaf_spot"})

	got, err := svc.IdentifyFromPhoto(context.Background(), nil, "edible greens")
	require.NoError(t, err)
	require.NotEmpty(t, got.Treatments)
	assert.Equal(t, OrganicAdvisory, got.Treatments[0])
	assert.NotContains(t, got.Treatments, "Apply copper-based fungicide")
	assert.Equal(t, "leaf_spot", got.ID)
	assert.Equal(t, 0.9, got.Confidence)
}

func TestIdentifyOrnamentalKeepsTreatments(t *testing.T) {
	svc := newTestService(&recordingClassifier{pick: "powdery_mildew"})

	got, err := svc.IdentifyFromPhoto(context.Background(), nil, "rose")
	require.NoError(t, err)
	assert.Contains(t, got.Treatments, "Use sulfur-based fungicide if severe")
	assert.NotEqual(t, OrganicAdvisory, got.Treatments[0])
}

func TestTailorTreatmentsKeepsOrganicFungicides(t *testing.T) {
	got := tailorTreatments([]string{
		"Use organic fungicide",
		"Apply copper-based fungicide",
		"Neem oil fungicide blend",
		"Hand pick",
	}, "pepper")
	assert.Equal(t, []string{OrganicAdvisory, "Use organic fungicide", "Neem oil fungicide blend", "Hand pick"}, got)
}

func TestGetTreatmentSuggestions(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	plan, err := svc.GetTreatmentSuggestions(ctx, "powdery_mildew", "cucumber")
	require.NoError(t, err)
	assert.Equal(t, "immediate", plan.Urgency)
	assert.Equal(t, OrganicAdvisory, plan.CustomTreatments[0])
	assert.Len(t, plan.Treatments, 4)

	plan, err = svc.GetTreatmentSuggestions(ctx, "aphids", "")
	require.NoError(t, err)
	assert.Equal(t, "3-5 days", plan.Urgency)
	assert.Equal(t, plan.Treatments, plan.CustomTreatments)

	_, err = svc.GetTreatmentSuggestions(ctx, "locusts", "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetByType(t *testing.T) {
	svc := newTestService(nil)

	diseases, err := svc.GetByType(context.Background(), "disease")
	require.NoError(t, err)
	assert.Len(t, diseases, 2)

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestEmptyKnowledgeBase(t *testing.T) {
	svc := NewService(store.New(nil).Pests, nil, nil, nil)
	_, err := svc.IdentifyFromPhoto(context.Background(), nil, "tomato")
	assert.ErrorIs(t, err, ErrEmptyKnowledgeBase)
}
