package catalog

import "luxesalon/models"

// CatalogService exposes the salon's read-only reference data: services,
// providers and outlets. It has no lifecycle and no mutating operations.
type CatalogService interface {
	Services() []models.Service
	Providers() []models.Provider
	Outlets() []models.Outlet
	ServiceByID(id string) (models.Service, bool)
	ProviderByID(id string) (models.Provider, bool)
	OutletByID(id string) (models.Outlet, bool)
	ServicesByIDs(ids []string) []models.Service
}

// DefaultCatalogService implements CatalogService over a static data set.
type DefaultCatalogService struct {
	services  []models.Service
	providers []models.Provider
	outlets   []models.Outlet
}

// NewDefaultCatalogService builds a catalog over the given reference data.
func NewDefaultCatalogService(services []models.Service, providers []models.Provider, outlets []models.Outlet) *DefaultCatalogService {
	return &DefaultCatalogService{
		services:  services,
		providers: providers,
		outlets:   outlets,
	}
}

func (c *DefaultCatalogService) Services() []models.Service {
	out := make([]models.Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *DefaultCatalogService) Providers() []models.Provider {
	out := make([]models.Provider, len(c.providers))
	copy(out, c.providers)
	return out
}

func (c *DefaultCatalogService) Outlets() []models.Outlet {
	out := make([]models.Outlet, len(c.outlets))
	copy(out, c.outlets)
	return out
}

func (c *DefaultCatalogService) ServiceByID(id string) (models.Service, bool) {
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

func (c *DefaultCatalogService) ProviderByID(id string) (models.Provider, bool) {
	for _, p := range c.providers {
		if p.ID == id {
			return p, true
		}
	}
	return models.Provider{}, false
}

func (c *DefaultCatalogService) OutletByID(id string) (models.Outlet, bool) {
	for _, o := range c.outlets {
		if o.ID == id {
			return o, true
		}
	}
	return models.Outlet{}, false
}

// ServicesByIDs returns the catalog services matching the given ids, in
// catalog order. Unknown ids are skipped.
func (c *DefaultCatalogService) ServicesByIDs(ids []string) []models.Service {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	var out []models.Service
	for _, s := range c.services {
		if set[s.ID] {
			out = append(out, s)
		}
	}
	return out
}
