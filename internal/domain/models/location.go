package models

import "time"

// Location is the gardener's single saved address.
type Location struct {
	ID         int       `json:"id"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zipCode"`
	Country    string    `json:"country"`
	Latitude   string    `json:"latitude"`
	Longitude  string    `json:"longitude"`
	Timezone   string    `json:"timezone"`
	GardenSize string    `json:"gardenSize"`
	GardenType string    `json:"gardenType"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LocationPatch carries a partial location save.
type LocationPatch struct {
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	ZipCode    *string `json:"zipCode"`
	Country    *string `json:"country"`
	Latitude   *string `json:"latitude"`
	Longitude  *string `json:"longitude"`
	Timezone   *string `json:"timezone"`
	GardenSize *string `json:"gardenSize"`
	GardenType *string `json:"gardenType"`
}

// Apply replaces every field set in the patch on a copy of l.
func (patch LocationPatch) Apply(l Location) Location {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&l.Address, patch.Address)
	set(&l.City, patch.City)
	set(&l.State, patch.State)
	set(&l.ZipCode, patch.ZipCode)
	set(&l.Country, patch.Country)
	set(&l.Latitude, patch.Latitude)
	set(&l.Longitude, patch.Longitude)
	set(&l.Timezone, patch.Timezone)
	set(&l.GardenSize, patch.GardenSize)
	set(&l.GardenType, patch.GardenType)
	return l
}

// Position is a device position fix.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// Address is the result of reverse geocoding a coordinate.
type Address struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// PlaceMatch is one hit of a location search.
type PlaceMatch struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocalForecastDay is one day of the short forecast attached to a location.
type LocalForecastDay struct {
	Day       string `json:"day"`
	High      int    `json:"high"`
	Low       int    `json:"low"`
	Condition string `json:"condition"`
}

// LocalWeather is the weather summary for a coordinate.
type LocalWeather struct {
	Temperature int                `json:"temperature"`
	Condition   string             `json:"condition"`
	Humidity    int                `json:"humidity"`
	WindSpeed   int                `json:"windSpeed"`
	Forecast    []LocalForecastDay `json:"forecast"`
}
