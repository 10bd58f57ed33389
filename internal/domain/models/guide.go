package models

import "slices"

// Difficulty grades how much experience a guide assumes.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Guide is read-only reference content.
type Guide struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Tags        []string   `json:"tags"`
	ReadTime    string     `json:"readTime"`
	ImageURL    string     `json:"imageUrl"`
}

// Clone returns an independent copy of the guide.
func (g Guide) Clone() Guide {
	g.Tags = slices.Clone(g.Tags)
	return g
}
