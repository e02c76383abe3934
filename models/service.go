package models

// Service represents a bookable salon service. Immutable reference data.
type Service struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`       // non-negative
	Duration int     `bson:"duration" json:"duration"` // minutes, positive
}
