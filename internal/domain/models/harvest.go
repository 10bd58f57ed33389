package models

import (
	"slices"
	"time"
)

// YieldUnit enumerates the units a harvest can be weighed or counted in.
type YieldUnit string

const (
	UnitPounds  YieldUnit = "lbs"
	UnitKilos   YieldUnit = "kg"
	UnitOunces  YieldUnit = "oz"
	UnitPieces  YieldUnit = "pieces"
	UnitBunches YieldUnit = "bunches"
)

// Harvest records one picking from a plant.
type Harvest struct {
	ID                string    `json:"id"`
	PlantID           string    `json:"plantId"`
	YieldAmount       float64   `json:"yieldAmount"`
	YieldUnit         YieldUnit `json:"yieldUnit"`
	QualityRating     int       `json:"qualityRating"` // 1-5
	Notes             string    `json:"notes"`
	StorageMethod     string    `json:"storageMethod"`
	WeatherConditions string    `json:"weatherConditions"`
	Photos            []string  `json:"photos"`
	HarvestDate       time.Time `json:"harvestDate"`
}

// Clone returns an independent copy of the harvest.
func (h Harvest) Clone() Harvest {
	h.Photos = slices.Clone(h.Photos)
	return h
}

// HarvestPatch carries a partial harvest update.
type HarvestPatch struct {
	PlantID           *string    `json:"plantId"`
	YieldAmount       *float64   `json:"yieldAmount"`
	YieldUnit         *YieldUnit `json:"yieldUnit"`
	QualityRating     *int       `json:"qualityRating"`
	Notes             *string    `json:"notes"`
	StorageMethod     *string    `json:"storageMethod"`
	WeatherConditions *string    `json:"weatherConditions"`
	Photos            []string   `json:"photos"`
	HarvestDate       *time.Time `json:"harvestDate"`
}

// Apply replaces every field set in the patch on a copy of h.
func (patch HarvestPatch) Apply(h Harvest) Harvest {
	h = h.Clone()
	if patch.PlantID != nil {
		h.PlantID = *patch.PlantID
	}
	if patch.YieldAmount != nil {
		h.YieldAmount = *patch.YieldAmount
	}
	if patch.YieldUnit != nil {
		h.YieldUnit = *patch.YieldUnit
	}
	if patch.QualityRating != nil {
		h.QualityRating = *patch.QualityRating
	}
	if patch.Notes != nil {
		h.Notes = *patch.Notes
	}
	if patch.StorageMethod != nil {
		h.StorageMethod = *patch.StorageMethod
	}
	if patch.WeatherConditions != nil {
		h.WeatherConditions = *patch.WeatherConditions
	}
	if patch.Photos != nil {
		h.Photos = slices.Clone(patch.Photos)
	}
	if patch.HarvestDate != nil {
		h.HarvestDate = *patch.HarvestDate
	}
	return h
}

// HarvestStats summarizes every harvest of one plant. LastHarvest is nil
// when the plant has never been harvested.
type HarvestStats struct {
	TotalHarvests  int        `json:"totalHarvests"`
	TotalYield     float64    `json:"totalYield"`
	AverageQuality float64    `json:"averageQuality"`
	LastHarvest    *time.Time `json:"lastHarvest"`
}
