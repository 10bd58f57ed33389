package guides

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/fixtures"
	"github.com/mamadbah2/greenthumb/internal/store"
)

func newTestService() *Service {
	return NewService(store.New(fixtures.MustLoad()).Guides, nil, nil)
}

func ids(list []models.Guide) []string {
	out := make([]string, 0, len(list))
	for _, g := range list {
		out = append(out, g.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		query string
		want  []string
	}{
		{"TOMATO", []string{"1"}},     // title
		{"beneficial", []string{"5"}}, // description and tag
		{"rosemary", []string{"3"}},   // tag only
		{"soil", []string{"4", "6"}},  // tag, title
		{"cactus", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got, err := svc.Search(ctx, tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestGetByCategory(t *testing.T) {
	svc := newTestService()

	got, err := svc.GetByCategory(context.Background(), "Soil & Compost")
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "6"}, ids(got))

	none, err := svc.GetByCategory(context.Background(), "Trees")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetByIDCopiesTags(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	g, err := svc.GetByID(ctx, "1")
	require.NoError(t, err)
	g.Tags[0] = "changed"

	again, err := svc.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "tomatoes", again.Tags[0])

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
