package catalog

import "luxesalon/models"

// NewSeededCatalogService returns the catalog preloaded with the salon's
// launch data set.
func NewSeededCatalogService() *DefaultCatalogService {
	return NewDefaultCatalogService(seedServices(), seedProviders(), seedOutlets())
}

func seedServices() []models.Service {
	return []models.Service{
		{ID: "1", Name: "Premium Haircut", Price: 45.00, Duration: 45},
		{ID: "2", Name: "Hair Wash & Styling", Price: 30.00, Duration: 30},
		{ID: "3", Name: "Full Color Treatment", Price: 120.00, Duration: 120},
		{ID: "4", Name: "Scalp Therapy", Price: 65.00, Duration: 60},
		{ID: "5", Name: "Beard Grooming", Price: 25.00, Duration: 20},
	}
}

func seedProviders() []models.Provider {
	return []models.Provider{
		{
			ID:             "s1",
			Name:           "Alexander V.",
			Title:          "Senior Creative Director",
			Bio:            "Over 12 years of experience in luxury hair styling and color theory.",
			Photo:          "https://picsum.photos/seed/alex/400/400",
			AvailableSlots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
		},
		{
			ID:             "s2",
			Name:           "Sophia Chen",
			Title:          "Expert Colorist",
			Bio:            "Specializing in balayage and contemporary color techniques.",
			Photo:          "https://picsum.photos/seed/sophia/400/400",
			AvailableSlots: []string{"09:30", "10:30", "13:30", "14:30", "15:30"},
		},
		{
			ID:             "s3",
			Name:           "Marcus Thorne",
			Title:          "Master Barber",
			Bio:            "Precision cutting and traditional grooming specialist.",
			Photo:          "https://picsum.photos/seed/marcus/400/400",
			AvailableSlots: []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		},
	}
}

func seedOutlets() []models.Outlet {
	return []models.Outlet{
		{
			ID:      "o1",
			Name:    "LuxeSalon Downtown",
			Address: "123 Fashion Ave, Metropolitan City, 10001",
			Contact: "+1 234 567 890",
			Photo:   "https://picsum.photos/seed/salon1/800/400",
		},
		{
			ID:      "o2",
			Name:    "LuxeSalon Riverside",
			Address: "456 Water St, Metro North, 10025",
			Contact: "+1 987 654 321",
			Photo:   "https://picsum.photos/seed/salon2/800/400",
		},
	}
}
