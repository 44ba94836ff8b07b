package types

import (
	"fmt"
	"strconv"
	"strings"

	"realestate_backend/internal/models"
)

// PriceRange bounds a price search. Either bound may be absent.
type PriceRange struct {
	Gte *float64 `json:"gte,omitempty"`
	Lte *float64 `json:"lte,omitempty"`
}

// HomeFilters is a conjunction of the filters a caller supplied. Zero fields
// are not part of the search.
type HomeFilters struct {
	City         string              `json:"city,omitempty"`
	Price        *PriceRange         `json:"price,omitempty"`
	PropertyType models.PropertyType `json:"property_type,omitempty"`
}

// HomeQuery is the raw query string of GET /home.
type HomeQuery struct {
	City         string `form:"city"`
	MinPrice     string `form:"minPrice"`
	MaxPrice     string `form:"maxPrice"`
	PropertyType string `form:"propertyType"`
}

// ToFilters keeps only the non-empty parameters.
func (q HomeQuery) ToFilters() (HomeFilters, error) {
	var f HomeFilters

	if city := strings.TrimSpace(q.City); city != "" {
		f.City = city
	}

	minPrice, err := parsePrice("minPrice", q.MinPrice)
	if err != nil {
		return HomeFilters{}, err
	}
	maxPrice, err := parsePrice("maxPrice", q.MaxPrice)
	if err != nil {
		return HomeFilters{}, err
	}
	if minPrice != nil || maxPrice != nil {
		f.Price = &PriceRange{Gte: minPrice, Lte: maxPrice}
	}

	if pt := strings.TrimSpace(q.PropertyType); pt != "" {
		propertyType := models.PropertyType(strings.ToUpper(pt))
		if !propertyType.IsValid() {
			return HomeFilters{}, fmt.Errorf("invalid propertyType %q", q.PropertyType)
		}
		f.PropertyType = propertyType
	}

	return f, nil
}

func parsePrice(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}
