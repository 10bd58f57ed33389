package models

import "slices"

// Pest describes one pest or disease in the identification knowledge base.
type Pest struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"` // pest | disease
	CommonOn   []string `json:"commonOn"`
	Symptoms   []string `json:"symptoms"`
	Treatments []string `json:"treatments"`
	Severity   string   `json:"severity"` // low | moderate | high
	Prevention string   `json:"prevention"`
}

// Clone returns an independent copy of the pest entry.
func (p Pest) Clone() Pest {
	p.CommonOn = slices.Clone(p.CommonOn)
	p.Symptoms = slices.Clone(p.Symptoms)
	p.Treatments = slices.Clone(p.Treatments)
	return p
}

// PestIdentification is the outcome of analysing a photo for pests.
type PestIdentification struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Confidence      float64  `json:"confidence"`
	Symptoms        []string `json:"symptoms"`
	Treatments      []string `json:"treatments"`
	Severity        string   `json:"severity"`
	Prevention      string   `json:"prevention"`
	MatchedSymptoms []string `json:"matchedSymptoms"`
}

// TreatmentPlan is a pest entry with treatments tailored to a plant type.
type TreatmentPlan struct {
	Pest
	CustomTreatments []string `json:"customTreatments"`
	Urgency          string   `json:"urgency"`
}
