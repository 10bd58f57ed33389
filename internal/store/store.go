package store

import (
	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/fixtures"
)

// Store groups every collection the services operate on. Build one per
// process, or one per test for isolation.
type Store struct {
	Plants     *Collection[models.Plant]
	GardenBeds *Collection[models.GardenBed]
	CareTasks  *Collection[models.CareTask]
	Harvests   *Collection[models.Harvest]
	Guides     *Collection[models.Guide]
	Pests      *Collection[models.Pest]

	Location *Singleton[models.Location]
	Profile  *Singleton[models.Profile]
	Weather  *Singleton[models.WeatherSnapshot]
}

// New seeds a store from fixture data. The fixture slices are copied and
// never written to.
func New(seed *fixtures.Data) *Store {
	if seed == nil {
		seed = &fixtures.Data{}
	}

	return &Store{
		Plants:     NewCollection("plant", seed.Plants, func(p models.Plant) string { return p.ID }, models.Plant.Clone),
		GardenBeds: NewCollection("garden bed", seed.GardenBeds, func(b models.GardenBed) string { return b.ID }, models.GardenBed.Clone),
		CareTasks:  NewCollection("care task", seed.CareTasks, func(t models.CareTask) string { return t.ID }, models.CareTask.Clone),
		Harvests:   NewCollection("harvest", seed.Harvests, func(h models.Harvest) string { return h.ID }, models.Harvest.Clone),
		Guides:     NewCollection("guide", seed.Guides, func(g models.Guide) string { return g.ID }, models.Guide.Clone),
		Pests:      NewCollection("pest", seed.Pests, func(p models.Pest) string { return p.ID }, models.Pest.Clone),

		Location: NewSingleton(seed.Location, func(l models.Location) models.Location { return l }),
		Profile:  NewSingleton(seed.Profile, models.Profile.Clone),
		Weather:  NewSingleton(seed.Weather, models.WeatherSnapshot.Clone),
	}
}
