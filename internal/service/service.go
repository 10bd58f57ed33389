// Package service is the single access point to every garden service.
package service

import (
	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/fixtures"
	"github.com/mamadbah2/greenthumb/internal/idgen"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/service/caretasks"
	"github.com/mamadbah2/greenthumb/internal/service/gardenbeds"
	"github.com/mamadbah2/greenthumb/internal/service/guides"
	"github.com/mamadbah2/greenthumb/internal/service/harvests"
	"github.com/mamadbah2/greenthumb/internal/service/location"
	"github.com/mamadbah2/greenthumb/internal/service/pests"
	"github.com/mamadbah2/greenthumb/internal/service/plants"
	"github.com/mamadbah2/greenthumb/internal/service/profile"
	"github.com/mamadbah2/greenthumb/internal/service/weather"
	"github.com/mamadbah2/greenthumb/internal/store"
)

// Registry holds a handle to every service.
type Registry struct {
	Plants     *plants.Service
	GardenBeds *gardenbeds.Service
	CareTasks  *caretasks.Service
	Harvests   *harvests.Service
	Guides     *guides.Service
	Weather    *weather.Service
	Location   *location.Service
	Profile    *profile.Service
	Pests      *pests.Service
}

// Deps are the collaborators shared by the services. Nil fields fall back
// to production defaults.
type Deps struct {
	Store           *store.Store
	IDs             idgen.Generator
	Delay           latency.Simulator
	PlantClassifier plants.Classifier
	PestClassifier  pests.Classifier
	Logger          *zap.Logger
}

// New builds every service over one store.
func New(deps Deps) *Registry {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	st := deps.Store
	var seed *fixtures.Data
	if st == nil || deps.PlantClassifier == nil {
		seed = fixtures.MustLoad()
	}
	if st == nil {
		st = store.New(seed)
	}

	ids := deps.IDs
	if ids == nil {
		ids = idgen.NewULID()
	}

	delay := deps.Delay
	if delay == nil {
		delay = latency.None()
	}

	plantClassifier := deps.PlantClassifier
	if plantClassifier == nil {
		plantClassifier = plants.NewRandomClassifier(seed.PlantIdentifications, nil)
	}

	return &Registry{
		Plants:     plants.NewService(st.Plants, ids, delay, plantClassifier, logger.Named("svc.plants")),
		GardenBeds: gardenbeds.NewService(st.GardenBeds, ids, delay, logger.Named("svc.gardenbeds")),
		CareTasks:  caretasks.NewService(st.CareTasks, ids, delay, logger.Named("svc.caretasks")),
		Harvests:   harvests.NewService(st.Harvests, ids, delay, logger.Named("svc.harvests")),
		Guides:     guides.NewService(st.Guides, delay, logger.Named("svc.guides")),
		Weather:    weather.NewService(st.Weather, delay, logger.Named("svc.weather")),
		Location:   location.NewService(st.Location, delay, logger.Named("svc.location")),
		Profile:    profile.NewService(st.Profile, delay, logger.Named("svc.profile")),
		Pests:      pests.NewService(st.Pests, deps.PestClassifier, delay, logger.Named("svc.pests")),
	}
}
