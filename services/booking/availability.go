package booking

import (
	"sort"

	"luxesalon/models"
)

// ResolveSlots computes the candidate booking times for a provider
// selection. A specific provider yields exactly its declared slots in
// declared order; the no-preference sentinel (or no selection at all) yields
// the union of every provider's slots, deduplicated and sorted ascending.
// Pure function of the catalog data: an empty catalog yields an empty set
// and an unknown provider id yields nothing.
func ResolveSlots(providers []models.Provider, providerID string) []string {
	if providerID != "" && providerID != models.ProviderNoPreference {
		for _, p := range providers {
			if p.ID == providerID {
				slots := make([]string, len(p.AvailableSlots))
				copy(slots, p.AvailableSlots)
				return slots
			}
		}
		return nil
	}

	seen := make(map[string]bool)
	var union []string
	for _, p := range providers {
		for _, slot := range p.AvailableSlots {
			if !seen[slot] {
				seen[slot] = true
				union = append(union, slot)
			}
		}
	}
	// Zero-padded HH:MM sorts lexicographically into chronological order.
	sort.Strings(union)
	return union
}

func containsSlot(slots []string, t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
