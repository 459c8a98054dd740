package service

import (
	"context"

	"github.com/cchiddy480/PokePort/internal/model"
	"github.com/cchiddy480/PokePort/internal/store"
)

// CollectionService handles collection operations over the card store.
type CollectionService struct {
	cards store.CardStore
}

// NewCollectionService creates a new collection service.
func NewCollectionService(cards store.CardStore) *CollectionService {
	return &CollectionService{cards: cards}
}

// AddCardInput contains the input for adding a card.
type AddCardInput struct {
	Name          string
	SetName       string
	Rarity        string
	PurchasePrice float64
	MarketValue   float64
	GradingScore  float64
	ImageURL      string
}

// EditCardInput contains the input for editing a card.
// Pointer fields indicate "set this field"; nil means "don't change".
type EditCardInput struct {
	ID            int64
	Name          *string
	SetName       *string
	Rarity        *string
	PurchasePrice *float64
	MarketValue   *float64
	GradingScore  *float64
	ImageURL      *string // nil = no change, empty string = clear
}

// Add validates and persists a new card, returning it with its assigned id.
func (s *CollectionService) Add(ctx context.Context, input AddCardInput) (*model.Card, error) {
	card, err := model.New(input.Name, input.SetName, input.Rarity,
		input.PurchasePrice, input.MarketValue, input.GradingScore, input.ImageURL)
	if err != nil {
		return nil, err
	}

	id, err := s.cards.Create(ctx, card)
	if err != nil {
		return nil, err
	}
	card.ID = id
	return card, nil
}

// Get returns one card by id.
func (s *CollectionService) Get(ctx context.Context, id int64) (*model.Card, error) {
	return s.cards.Get(ctx, id)
}

// List returns the whole collection.
func (s *CollectionService) List(ctx context.Context) ([]*model.Card, error) {
	return s.cards.List(ctx)
}

// Edit applies the non-nil fields of input to the matching card and
// persists the result. The merged card is re-validated before writing.
func (s *CollectionService) Edit(ctx context.Context, input EditCardInput) (*model.Card, error) {
	card, err := s.cards.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		card.Name = *input.Name
	}
	if input.SetName != nil {
		card.SetName = *input.SetName
	}
	if input.Rarity != nil {
		card.Rarity = *input.Rarity
	}
	if input.PurchasePrice != nil {
		card.PurchasePrice = *input.PurchasePrice
	}
	if input.MarketValue != nil {
		card.MarketValue = *input.MarketValue
	}
	if input.GradingScore != nil {
		card.GradingScore = *input.GradingScore
	}
	if input.ImageURL != nil {
		card.ImageURL = *input.ImageURL
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}
	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// Remove deletes a card by id. Deleting an absent card is a no-op.
func (s *CollectionService) Remove(ctx context.Context, id int64) error {
	return s.cards.Delete(ctx, id)
}
