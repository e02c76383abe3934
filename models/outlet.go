package models

// Outlet represents a physical salon location. Immutable reference data.
type Outlet struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
	Contact string `bson:"contact" json:"contact"`
	Photo   string `bson:"photo" json:"photo"`
}
