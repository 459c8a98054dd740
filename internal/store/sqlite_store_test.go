package store

import (
	"context"
	"path/filepath"
	"testing"

	pperr "github.com/cchiddy480/PokePort/internal/errors"
	"github.com/cchiddy480/PokePort/internal/model"
	"github.com/cchiddy480/PokePort/testutil"
)

func newTestStore(t *testing.T) *SQLiteCardStore {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "pokeport.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func testCard() *model.Card {
	return testutil.TestCard(0, "Charizard")
}

func TestInit_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, testCard())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Re-running Init must not fail or touch existing rows.
	if err := s.Init(ctx); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if _, err := s.Get(ctx, id); err != nil {
		t.Errorf("card lost after re-Init: %v", err)
	}
}

func TestCreateGet_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	original := testCard()
	id, err := s.Create(ctx, original)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Create returned id 0")
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	want := *original
	want.ID = id
	if *got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", *got, want)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), 999)
	if !pperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestList_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	cards, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if cards == nil || len(cards) != 0 {
		t.Errorf("expected empty slice, got %v", cards)
	}
}

func TestList_InsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	names := []string{"Bulbasaur", "Ivysaur", "Venusaur"}
	for _, name := range names {
		card := testCard()
		card.Name = name
		if _, err := s.Create(ctx, card); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	cards, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cards) != len(names) {
		t.Fatalf("got %d cards, want %d", len(cards), len(names))
	}
	for i, name := range names {
		if cards[i].Name != name {
			t.Errorf("cards[%d].Name = %q, want %q", i, cards[i].Name, name)
		}
	}
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	card := testCard()
	id, err := s.Create(ctx, card)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	card.ID = id
	card.MarketValue = 420
	card.ImageURL = ""

	if err := s.Update(ctx, card); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.MarketValue != 420 {
		t.Errorf("MarketValue = %g, want 420", got.MarketValue)
	}
	if got.ImageURL != "" {
		t.Errorf("ImageURL = %q, want empty (stored as NULL)", got.ImageURL)
	}
}

func TestUpdate_WithoutID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, testCard()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	unsaved := testCard()
	unsaved.Name = "Mew"
	if err := s.Update(ctx, unsaved); !pperr.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Store unchanged: the existing row keeps its original name.
	cards, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cards) != 1 || cards[0].Name != "Charizard" {
		t.Errorf("store changed by rejected update: %+v", cards)
	}
}

func TestUpdate_MissingRowIsNoop(t *testing.T) {
	s := newTestStore(t)

	card := testCard()
	card.ID = 12345
	if err := s.Update(context.Background(), card); err != nil {
		t.Errorf("update of missing row should be a no-op, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, testCard())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, id); !pperr.IsNotFound(err) {
		t.Errorf("expected not-found after delete, got %v", err)
	}
}

func TestDelete_MissingRowIsNoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, testCard())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := s.Delete(ctx, 999); err != nil {
		t.Errorf("delete of missing row should be a no-op, got %v", err)
	}

	cards, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cards) != 1 || cards[0].ID != id {
		t.Errorf("store changed by no-op delete: %+v", cards)
	}
}
