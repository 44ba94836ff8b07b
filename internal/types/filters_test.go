package types

import (
	"testing"

	"realestate_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeQuery_ToFilters(t *testing.T) {
	f, err := HomeQuery{}.ToFilters()
	require.NoError(t, err)
	assert.Equal(t, HomeFilters{}, f)

	f, err = HomeQuery{City: " Toronto ", MinPrice: "10000"}.ToFilters()
	require.NoError(t, err)
	assert.Equal(t, "Toronto", f.City)
	require.NotNil(t, f.Price)
	assert.Equal(t, 10000.0, *f.Price.Gte)
	assert.Nil(t, f.Price.Lte)

	f, err = HomeQuery{MaxPrice: "250000.50", PropertyType: "condo"}.ToFilters()
	require.NoError(t, err)
	assert.Nil(t, f.Price.Gte)
	assert.Equal(t, 250000.50, *f.Price.Lte)
	assert.Equal(t, models.PropertyTypeCondo, f.PropertyType)
	assert.Empty(t, f.City)
}

func TestHomeQuery_ToFiltersRejectsBadValues(t *testing.T) {
	cases := map[string]HomeQuery{
		"minPrice":     {MinPrice: "cheap"},
		"maxPrice":     {MaxPrice: "10k"},
		"propertyType": {PropertyType: "CASTLE"},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := q.ToFilters()
			assert.ErrorContains(t, err, name)
		})
	}
}
