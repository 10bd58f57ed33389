package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/fixtures"
)

func newPlants(seed ...models.Plant) *Collection[models.Plant] {
	return NewCollection("plant", seed, func(p models.Plant) string { return p.ID }, models.Plant.Clone)
}

func TestCollectionDoesNotAliasSeed(t *testing.T) {
	seed := []models.Plant{{ID: "1", Name: "Basil", CareRequirements: map[string]string{"water": "daily"}}}
	c := newPlants(seed...)

	seed[0].Name = "changed"
	seed[0].CareRequirements["water"] = "never"

	got, err := c.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Basil", got.Name)
	assert.Equal(t, "daily", got.CareRequirements["water"])
}

func TestCollectionReturnsCopies(t *testing.T) {
	c := newPlants(models.Plant{ID: "1", CareRequirements: map[string]string{"water": "daily"}})

	all := c.All()
	all[0].CareRequirements["water"] = "never"
	all = all[:0]

	again := c.All()
	require.Len(t, again, 1)
	assert.Equal(t, "daily", again[0].CareRequirements["water"])
}

func TestCollectionOrderAndRemove(t *testing.T) {
	c := newPlants(models.Plant{ID: "a"}, models.Plant{ID: "b"})
	c.Append(models.Plant{ID: "c"})
	c.Append(models.Plant{ID: "d"})

	require.NoError(t, c.Remove("b"))
	ids := []string{}
	for _, p := range c.All() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)
	assert.Equal(t, 3, c.Len())

	err := c.Remove("b")
	require.ErrorIs(t, err, models.ErrNotFound)

	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "plant", nf.Entity)
	assert.Equal(t, "b", nf.ID)
}

func TestCollectionReplace(t *testing.T) {
	c := newPlants(models.Plant{ID: "1", Name: "Basil"})

	got, err := c.Replace("1", func(p models.Plant) models.Plant {
		p.Name = "Thai Basil"
		return p
	})
	require.NoError(t, err)
	assert.Equal(t, "Thai Basil", got.Name)

	_, err = c.Replace("missing", func(p models.Plant) models.Plant { return p })
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestCollectionFilterNeverNil(t *testing.T) {
	c := newPlants()
	got := c.Filter(func(models.Plant) bool { return false })
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSingletonUpdate(t *testing.T) {
	s := NewSingleton(models.Profile{Name: "A"}, models.Profile.Clone)
	got := s.Update(func(p models.Profile) models.Profile {
		p.Name = "B"
		return p
	})
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, "B", s.Get().Name)
}

func TestNewFromFixtures(t *testing.T) {
	seed := fixtures.MustLoad()
	s := New(seed)

	assert.Equal(t, len(seed.Plants), s.Plants.Len())
	assert.Equal(t, len(seed.Pests), s.Pests.Len())

	require.NoError(t, s.Plants.Remove(seed.Plants[0].ID))
	assert.Len(t, seed.Plants, 6, "fixture slice must not be mutated")

	fresh := New(seed)
	assert.Equal(t, 6, fresh.Plants.Len())
}

func TestNewWithNilSeed(t *testing.T) {
	s := New(nil)
	assert.Zero(t, s.Plants.Len())
	assert.Empty(t, s.Weather.Get().Forecast)
}
