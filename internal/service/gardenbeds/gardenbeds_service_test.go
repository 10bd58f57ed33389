package gardenbeds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/fixtures"
	"github.com/mamadbah2/greenthumb/internal/idgen"
	"github.com/mamadbah2/greenthumb/internal/store"
)

func newTestService() *Service {
	st := store.New(fixtures.MustLoad())
	return NewService(st.GardenBeds, idgen.NewSequence("bed"), nil, nil)
}

func TestCRUD(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.GardenBed{
		Name:        "Raised Bed",
		SunExposure: models.FullSun,
		SoilType:    "Compost mix",
		Area:        32,
	})
	require.NoError(t, err)
	assert.Equal(t, "bed-1", created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	area := 40.0
	updated, err := svc.Update(ctx, created.ID, models.GardenBedPatch{Area: &area})
	require.NoError(t, err)
	assert.Equal(t, 40.0, updated.Area)
	assert.Equal(t, "Raised Bed", updated.Name)
	assert.Equal(t, models.FullSun, updated.SunExposure)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestNotFound(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Update(ctx, "missing", models.GardenBedPatch{})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), models.ErrNotFound)
}
