package models

import (
	"maps"
	"time"
)

// PlantType enumerates the plant categories a gardener can record.
type PlantType string

const (
	PlantVegetable  PlantType = "Vegetable"
	PlantFlower     PlantType = "Flower"
	PlantHerb       PlantType = "Herb"
	PlantTree       PlantType = "Tree"
	PlantShrub      PlantType = "Shrub"
	PlantSucculent  PlantType = "Succulent"
	PlantHouseplant PlantType = "Houseplant"
)

// HealthStatus holds the three care gauges shown for a plant, each 0-100.
// The store does not clamp them.
type HealthStatus struct {
	Water     int `json:"water"`
	Sunlight  int `json:"sunlight"`
	Nutrients int `json:"nutrients"`
}

// Plant is a single plant growing in one of the garden beds.
type Plant struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	ScientificName   string            `json:"scientificName"`
	Type             PlantType         `json:"type"`
	GardenBedID      string            `json:"gardenBedId"`
	PhotoURL         string            `json:"photoUrl"`
	PlantedDate      time.Time         `json:"plantedDate"`
	CareRequirements map[string]string `json:"careRequirements"`
	HealthStatus     HealthStatus      `json:"healthStatus"`
}

// Clone returns an independent copy of the plant.
func (p Plant) Clone() Plant {
	p.CareRequirements = maps.Clone(p.CareRequirements)
	return p
}

// PlantPatch carries a partial plant update. Nil fields are left untouched.
type PlantPatch struct {
	Name             *string           `json:"name"`
	ScientificName   *string           `json:"scientificName"`
	Type             *PlantType        `json:"type"`
	GardenBedID      *string           `json:"gardenBedId"`
	PhotoURL         *string           `json:"photoUrl"`
	PlantedDate      *time.Time        `json:"plantedDate"`
	CareRequirements map[string]string `json:"careRequirements"`
	HealthStatus     *HealthStatus     `json:"healthStatus"`
}

// Apply replaces every field set in the patch on a copy of p.
func (patch PlantPatch) Apply(p Plant) Plant {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.ScientificName != nil {
		p.ScientificName = *patch.ScientificName
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.GardenBedID != nil {
		p.GardenBedID = *patch.GardenBedID
	}
	if patch.PhotoURL != nil {
		p.PhotoURL = *patch.PhotoURL
	}
	if patch.PlantedDate != nil {
		p.PlantedDate = *patch.PlantedDate
	}
	if patch.CareRequirements != nil {
		p.CareRequirements = maps.Clone(patch.CareRequirements)
	}
	if patch.HealthStatus != nil {
		p.HealthStatus = *patch.HealthStatus
	}
	return p
}

// PlantIdentification is the result of identifying a plant from a photo.
type PlantIdentification struct {
	Name             string            `json:"name"`
	ScientificName   string            `json:"scientificName"`
	Type             PlantType         `json:"type"`
	Confidence       float64           `json:"confidence"`
	CareRequirements map[string]string `json:"careRequirements"`
}

// Clone returns an independent copy of the identification.
func (i PlantIdentification) Clone() PlantIdentification {
	i.CareRequirements = maps.Clone(i.CareRequirements)
	return i
}
