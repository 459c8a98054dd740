package testutil

import (
	"github.com/cchiddy480/PokePort/internal/model"
)

// TestCard returns a card with sensible test defaults.
func TestCard(id int64, name string) *model.Card {
	return &model.Card{
		ID:            id,
		Name:          name,
		SetName:       "Base Set",
		Rarity:        "Rare Holo",
		PurchasePrice: 10,
		MarketValue:   25,
		GradingScore:  8.5,
		ImageURL:      "https://images.example.com/" + name + ".png",
	}
}
