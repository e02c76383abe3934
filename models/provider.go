package models

// Provider represents a stylist attached to the salon. Immutable reference data.
type Provider struct {
	ID             string   `bson:"id" json:"id"`
	Name           string   `bson:"name" json:"name"`
	Title          string   `bson:"title" json:"title"`
	Bio            string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Photo          string   `bson:"photo" json:"photo"`
	AvailableSlots []string `bson:"availableSlots" json:"availableSlots"` // "HH:MM", unique, declared order
}

// ProviderNoPreference is the sentinel provider selection meaning any
// provider is acceptable; availability then resolves to the union of all
// providers' slots.
const ProviderNoPreference = "no-preference"
