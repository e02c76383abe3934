package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededCatalogLookups(t *testing.T) {
	cat := NewSeededCatalogService()

	svc, ok := cat.ServiceByID("3")
	require.True(t, ok)
	assert.Equal(t, "Full Color Treatment", svc.Name)
	assert.Equal(t, 120.00, svc.Price)

	_, ok = cat.ServiceByID("9")
	assert.False(t, ok)

	p, ok := cat.ProviderByID("s2")
	require.True(t, ok)
	assert.Equal(t, "Sophia Chen", p.Name)
	assert.Equal(t, []string{"09:30", "10:30", "13:30", "14:30", "15:30"}, p.AvailableSlots)

	o, ok := cat.OutletByID("o1")
	require.True(t, ok)
	assert.Equal(t, "LuxeSalon Downtown", o.Name)
}

func TestServicesByIDsKeepsCatalogOrder(t *testing.T) {
	cat := NewSeededCatalogService()

	picked := cat.ServicesByIDs([]string{"3", "1", "9"})
	require.Len(t, picked, 2, "unknown ids are skipped")
	assert.Equal(t, "1", picked[0].ID)
	assert.Equal(t, "3", picked[1].ID)
}

func TestAccessorsReturnCopies(t *testing.T) {
	cat := NewSeededCatalogService()

	services := cat.Services()
	services[0].Price = 0

	again, _ := cat.ServiceByID(services[0].ID)
	assert.Equal(t, 45.00, again.Price, "catalog data is immutable to callers")
}
