package service

import (
	"context"
	"testing"

	pperr "github.com/cchiddy480/PokePort/internal/errors"
	"github.com/cchiddy480/PokePort/internal/model"
)

// testCardStore implements store.CardStore in memory for service testing.
type testCardStore struct {
	cards  map[int64]*model.Card
	nextID int64
}

func newTestCardStore() *testCardStore {
	return &testCardStore{cards: make(map[int64]*model.Card), nextID: 1}
}

func (m *testCardStore) Init(ctx context.Context) error { return nil }

func (m *testCardStore) Create(ctx context.Context, card *model.Card) (int64, error) {
	id := m.nextID
	m.nextID++
	copied := *card
	copied.ID = id
	m.cards[id] = &copied
	return id, nil
}

func (m *testCardStore) Get(ctx context.Context, id int64) (*model.Card, error) {
	if card, ok := m.cards[id]; ok {
		copied := *card
		return &copied, nil
	}
	return nil, pperr.CardNotFound(id)
}

func (m *testCardStore) List(ctx context.Context) ([]*model.Card, error) {
	cards := []*model.Card{}
	for id := int64(1); id < m.nextID; id++ {
		if card, ok := m.cards[id]; ok {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

func (m *testCardStore) Update(ctx context.Context, card *model.Card) error {
	if !card.Persisted() {
		return pperr.InvalidField("id", "card must have an id to be updated")
	}
	if _, ok := m.cards[card.ID]; !ok {
		return nil // no-op
	}
	copied := *card
	m.cards[card.ID] = &copied
	return nil
}

func (m *testCardStore) Delete(ctx context.Context, id int64) error {
	delete(m.cards, id)
	return nil
}

func (m *testCardStore) Close() error { return nil }

func TestAdd(t *testing.T) {
	svc := NewCollectionService(newTestCardStore())

	card, err := svc.Add(context.Background(), AddCardInput{
		Name:          "Pikachu",
		SetName:       "Base Set",
		Rarity:        "Common",
		PurchasePrice: 2,
		MarketValue:   5,
		GradingScore:  7.5,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !card.Persisted() {
		t.Errorf("added card should carry its assigned id, got %d", card.ID)
	}
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	mock := newTestCardStore()
	svc := NewCollectionService(mock)

	_, err := svc.Add(context.Background(), AddCardInput{Name: "", PurchasePrice: 1})
	if !pperr.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(mock.cards) != 0 {
		t.Error("invalid add must have no partial effect on the store")
	}
}

func TestEdit_PartialUpdate(t *testing.T) {
	svc := NewCollectionService(newTestCardStore())
	ctx := context.Background()

	card, err := svc.Add(ctx, AddCardInput{Name: "Eevee", SetName: "Jungle", PurchasePrice: 3, MarketValue: 4})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	newValue := 9.0
	edited, err := svc.Edit(ctx, EditCardInput{ID: card.ID, MarketValue: &newValue})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	if edited.MarketValue != 9.0 {
		t.Errorf("MarketValue = %g, want 9", edited.MarketValue)
	}
	if edited.Name != "Eevee" || edited.SetName != "Jungle" {
		t.Errorf("nil fields must stay unchanged, got %+v", edited)
	}
}

func TestEdit_RejectsInvalidMerge(t *testing.T) {
	svc := NewCollectionService(newTestCardStore())
	ctx := context.Background()

	card, err := svc.Add(ctx, AddCardInput{Name: "Eevee", PurchasePrice: 3})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	bad := -1.0
	if _, err := svc.Edit(ctx, EditCardInput{ID: card.ID, PurchasePrice: &bad}); !pperr.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	got, err := svc.Get(ctx, card.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.PurchasePrice != 3 {
		t.Errorf("rejected edit must leave the store unchanged, got %g", got.PurchasePrice)
	}
}

func TestEdit_MissingCard(t *testing.T) {
	svc := NewCollectionService(newTestCardStore())

	name := "Mew"
	if _, err := svc.Edit(context.Background(), EditCardInput{ID: 42, Name: &name}); !pperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	svc := NewCollectionService(newTestCardStore())
	ctx := context.Background()

	card, err := svc.Add(ctx, AddCardInput{Name: "Eevee"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.Remove(ctx, card.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := svc.Get(ctx, card.ID); !pperr.IsNotFound(err) {
		t.Errorf("expected not-found after remove, got %v", err)
	}
}
