package caretasks

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/fixtures"
	"github.com/mamadbah2/greenthumb/internal/idgen"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/store"
)

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestService(seed *fixtures.Data) (*Service, *store.Store) {
	st := store.New(seed)
	svc := NewService(st.CareTasks, idgen.NewSequence("task"), nil, nil)
	svc.now = func() time.Time { return now }
	return svc, st
}

func TestGetUpcomingWindowAndOrder(t *testing.T) {
	svc, _ := newTestService(&fixtures.Data{CareTasks: []models.CareTask{
		{ID: "far", PlantID: "1", ScheduledDate: now.AddDate(0, 0, 10)},
		{ID: "soon", PlantID: "1", ScheduledDate: now.AddDate(0, 0, 3)},
		{ID: "sooner", PlantID: "2", ScheduledDate: now.AddDate(0, 0, 1)},
		{ID: "done", PlantID: "2", ScheduledDate: now.AddDate(0, 0, 2), Completed: true},
		{ID: "past", PlantID: "2", ScheduledDate: now.AddDate(0, 0, -2)},
	}})

	got, err := svc.GetUpcoming(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "sooner", got[0].ID)
	assert.Equal(t, "soon", got[1].ID)

	defaulted, err := svc.GetUpcoming(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, got, defaulted)
}

func TestGetUpcomingExcludesBeyondWindow(t *testing.T) {
	svc, _ := newTestService(&fixtures.Data{CareTasks: []models.CareTask{
		{ID: "a", ScheduledDate: now.AddDate(0, 0, 3)},
		{ID: "b", ScheduledDate: now.AddDate(0, 0, 10)},
	}})

	got, err := svc.GetUpcoming(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestGetOverdue(t *testing.T) {
	svc, _ := newTestService(fixtures.MustLoad())
	svc.now = func() time.Time { return time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC) }

	got, err := svc.GetOverdue(context.Background())
	require.NoError(t, err)

	ids := []string{}
	for _, task := range got {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"1", "5", "2"}, ids)
}

func TestCreateDefaults(t *testing.T) {
	svc, _ := newTestService(fixtures.MustLoad())
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CareTask{
		PlantID:       "1",
		Type:          models.TaskWater,
		ScheduledDate: now.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "task-1", created.ID)
	assert.False(t, created.Completed)
	assert.Nil(t, created.CompletedDate)
	assert.Empty(t, created.Notes)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMarkComplete(t *testing.T) {
	svc, _ := newTestService(fixtures.MustLoad())
	ctx := context.Background()

	task, err := svc.MarkComplete(ctx, "1", "")
	require.NoError(t, err)
	assert.True(t, task.Completed)
	require.NotNil(t, task.CompletedDate)
	assert.False(t, task.CompletedDate.Before(now))
	assert.Empty(t, task.Notes)

	later := now.Add(time.Hour)
	svc.now = func() time.Time { return later }

	again, err := svc.MarkComplete(ctx, "1", "watered twice")
	require.NoError(t, err)
	assert.True(t, again.Completed)
	assert.Equal(t, later, *again.CompletedDate)
	assert.Equal(t, "watered twice", again.Notes)

	_, err = svc.MarkComplete(ctx, "missing", "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMarkCompleteCopyIsIndependent(t *testing.T) {
	svc, _ := newTestService(fixtures.MustLoad())
	ctx := context.Background()

	task, err := svc.MarkComplete(ctx, "2", "")
	require.NoError(t, err)
	*task.CompletedDate = time.Time{}

	stored, err := svc.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.False(t, stored.CompletedDate.IsZero())
}

func TestUpdateAndDelete(t *testing.T) {
	svc, _ := newTestService(fixtures.MustLoad())
	ctx := context.Background()

	before, err := svc.GetByID(ctx, "3")
	require.NoError(t, err)

	instructions := "Half strength feed"
	after, err := svc.Update(ctx, "3", models.CareTaskPatch{Instructions: &instructions})
	require.NoError(t, err)
	before.Instructions = instructions
	assert.Equal(t, before, after)

	require.NoError(t, svc.Delete(ctx, "3"))
	assert.ErrorIs(t, svc.Delete(ctx, "3"), models.ErrNotFound)

	_, err = svc.Update(ctx, "3", models.CareTaskPatch{})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetByPlant(t *testing.T) {
	svc, _ := newTestService(fixtures.MustLoad())

	got, err := svc.GetByPlant(context.Background(), "6")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "5", got[0].ID)
	assert.Equal(t, "6", got[1].ID)
}

func TestUpdateKeepsCompletedDateInStep(t *testing.T) {
	svc, _ := newTestService(fixtures.MustLoad())
	ctx := context.Background()

	_, err := svc.MarkComplete(ctx, "1", "done")
	require.NoError(t, err)

	reopen := false
	got, err := svc.Update(ctx, "1", models.CareTaskPatch{Completed: &reopen})
	require.NoError(t, err)
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletedDate)

	stored, err := svc.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, stored.CompletedDate)

	complete := true
	got, err = svc.Update(ctx, "1", models.CareTaskPatch{Completed: &complete})
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedDate)
	assert.Equal(t, now, *got.CompletedDate)

	explicit := now.Add(-time.Hour)
	got, err = svc.Update(ctx, "2", models.CareTaskPatch{Completed: &complete, CompletedDate: &explicit})
	require.NoError(t, err)
	require.NotNil(t, got.CompletedDate)
	assert.Equal(t, explicit, *got.CompletedDate)
}

func TestWritesFinishInDelayOrder(t *testing.T) {
	st := store.New(fixtures.MustLoad())
	svc := NewService(st.CareTasks, idgen.NewSequence("task"), latency.New(0.5), nil)
	ctx := context.Background()

	var (
		mu    sync.Mutex
		order []string
		wg    sync.WaitGroup
	)
	record := func(name string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, name)
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := svc.Create(ctx, models.CareTask{PlantID: "1", Type: models.TaskWater})
		assert.NoError(t, err)
		record("create")
	}()
	time.Sleep(5 * time.Millisecond)
	go func() {
		defer wg.Done()
		notes := "checked"
		_, err := svc.Update(ctx, "1", models.CareTaskPatch{Notes: &notes})
		assert.NoError(t, err)
		record("update")
	}()
	wg.Wait()

	assert.Equal(t, []string{"update", "create"}, order)
	assert.Equal(t, 8, st.CareTasks.Len())
}
