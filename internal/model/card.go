package model

import (
	"fmt"

	pperr "github.com/cchiddy480/PokePort/internal/errors"
)

// Card represents a single collected card.
// ID is assigned by the store on first write; ID == 0 means the card has
// never been persisted. Empty string means "absent" for all text fields,
// including ImageURL (the store maps it to NULL).
type Card struct {
	ID            int64   `json:"id,omitempty"`
	Name          string  `json:"name"`
	SetName       string  `json:"set_name"`
	Rarity        string  `json:"rarity"`
	PurchasePrice float64 `json:"purchase_price"`
	MarketValue   float64 `json:"market_value"`
	GradingScore  float64 `json:"grading_score"`
	ImageURL      string  `json:"image_url,omitempty"`
}

// New creates a validated Card ready for persistence.
// Name must be non-empty, prices non-negative, and the grading score either
// 0 (ungraded) or within [1, 10].
func New(name, setName, rarity string, purchasePrice, marketValue, gradingScore float64, imageURL string) (*Card, error) {
	card := &Card{
		Name:          name,
		SetName:       setName,
		Rarity:        rarity,
		PurchasePrice: purchasePrice,
		MarketValue:   marketValue,
		GradingScore:  gradingScore,
		ImageURL:      imageURL,
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, nil
}

// Validate checks field constraints. Conversion helpers (ToMap/FromMap)
// deliberately skip this so arbitrary records round-trip unchanged.
func (c *Card) Validate() error {
	if c.Name == "" {
		return pperr.InvalidField("name", "must not be empty")
	}
	if c.PurchasePrice < 0 {
		return pperr.InvalidField("purchase_price", "must not be negative")
	}
	if c.MarketValue < 0 {
		return pperr.InvalidField("market_value", "must not be negative")
	}
	if c.GradingScore != 0 && (c.GradingScore < 1 || c.GradingScore > 10) {
		return pperr.InvalidField("grading_score", fmt.Sprintf("must be within [1, 10], got %g", c.GradingScore))
	}
	return nil
}

// Persisted reports whether the card has been written to the store.
func (c *Card) Persisted() bool {
	return c.ID != 0
}

// ROI returns the return on investment relative to the purchase price.
// A card bought for 10 and worth 15 yields 0.5. Returns 0 when the
// purchase price is 0 to avoid division by zero.
func (c *Card) ROI() float64 {
	if c.PurchasePrice == 0 {
		return 0
	}
	return (c.MarketValue - c.PurchasePrice) / c.PurchasePrice
}

// ToMap converts the card to a generic string-keyed mapping covering all
// fields. The id key is present only for persisted cards.
func (c *Card) ToMap() map[string]any {
	m := map[string]any{
		"name":           c.Name,
		"set_name":       c.SetName,
		"rarity":         c.Rarity,
		"purchase_price": c.PurchasePrice,
		"market_value":   c.MarketValue,
		"grading_score":  c.GradingScore,
		"image_url":      c.ImageURL,
	}
	if c.ID != 0 {
		m["id"] = c.ID
	}
	return m
}

// FromMap builds a Card from a generic mapping, defaulting missing text
// fields to "" and missing numeric fields to 0. No validation is applied.
func FromMap(m map[string]any) *Card {
	return &Card{
		ID:            mapInt64(m, "id"),
		Name:          mapString(m, "name"),
		SetName:       mapString(m, "set_name"),
		Rarity:        mapString(m, "rarity"),
		PurchasePrice: mapFloat(m, "purchase_price"),
		MarketValue:   mapFloat(m, "market_value"),
		GradingScore:  mapFloat(m, "grading_score"),
		ImageURL:      mapString(m, "image_url"),
	}
}

func mapString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func mapFloat(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func mapInt64(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}
