// Package fixtures embeds the seed data the stores start from.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

//go:embed data/*.json
var files embed.FS

// Data is one ordered sequence of records per entity type plus the
// singleton records.
type Data struct {
	Plants               []models.Plant
	GardenBeds           []models.GardenBed
	CareTasks            []models.CareTask
	Harvests             []models.Harvest
	Guides               []models.Guide
	Pests                []models.Pest
	PlantIdentifications []models.PlantIdentification
	Weather              models.WeatherSnapshot
	Location             models.Location
	Profile              models.Profile
}

// Load decodes every embedded fixture file. Each call returns fresh values.
func Load() (*Data, error) {
	var d Data
	targets := []struct {
		name string
		dst  any
	}{
		{"plants.json", &d.Plants},
		{"gardenBeds.json", &d.GardenBeds},
		{"careTasks.json", &d.CareTasks},
		{"harvests.json", &d.Harvests},
		{"guides.json", &d.Guides},
		{"pests.json", &d.Pests},
		{"identifications.json", &d.PlantIdentifications},
		{"weather.json", &d.Weather},
		{"location.json", &d.Location},
		{"profile.json", &d.Profile},
	}

	for _, t := range targets {
		raw, err := files.ReadFile("data/" + t.name)
		if err != nil {
			return nil, fmt.Errorf("read fixture %s: %w", t.name, err)
		}
		if err := json.Unmarshal(raw, t.dst); err != nil {
			return nil, fmt.Errorf("decode fixture %s: %w", t.name, err)
		}
	}

	return &d, nil
}

// MustLoad is Load for process start-up and tests; it panics on error.
func MustLoad() *Data {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}
