package models

// SunExposure describes how much direct light a bed receives.
type SunExposure string

const (
	FullSun      SunExposure = "Full Sun"
	PartialShade SunExposure = "Partial Shade"
	Shade        SunExposure = "Shade"
)

// GardenBed is a named growing area.
type GardenBed struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	SunExposure SunExposure `json:"sunExposure"`
	SoilType    string      `json:"soilType"`
	Area        float64     `json:"area"` // square feet
}

// Clone returns an independent copy of the bed.
func (b GardenBed) Clone() GardenBed { return b }

// GardenBedPatch carries a partial bed update.
type GardenBedPatch struct {
	Name        *string      `json:"name"`
	Location    *string      `json:"location"`
	SunExposure *SunExposure `json:"sunExposure"`
	SoilType    *string      `json:"soilType"`
	Area        *float64     `json:"area"`
}

// Apply replaces every field set in the patch on a copy of b.
func (patch GardenBedPatch) Apply(b GardenBed) GardenBed {
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	if patch.Location != nil {
		b.Location = *patch.Location
	}
	if patch.SunExposure != nil {
		b.SunExposure = *patch.SunExposure
	}
	if patch.SoilType != nil {
		b.SoilType = *patch.SoilType
	}
	if patch.Area != nil {
		b.Area = *patch.Area
	}
	return b
}
