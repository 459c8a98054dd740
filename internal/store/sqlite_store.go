package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	pperr "github.com/cchiddy480/PokePort/internal/errors"
	"github.com/cchiddy480/PokePort/internal/model"
)

// SQLiteCardStore implements CardStore over a single local SQLite file.
//
// The handle is capped at one open connection so all writes serialize
// behind a single owner rather than relying on SQLITE_BUSY handling.
type SQLiteCardStore struct {
	db *sql.DB
}

// Ensure SQLiteCardStore implements the CardStore interface
var _ CardStore = (*SQLiteCardStore)(nil)

// Open opens (creating if necessary) the database file at path.
func Open(path string) (*SQLiteCardStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, pperr.StorageFault("open", fmt.Errorf("failed to create data directory: %w", err))
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, pperr.StorageFault("open", err)
	}
	db.SetMaxOpenConns(1)

	return &SQLiteCardStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteCardStore) Close() error {
	return s.db.Close()
}

// Init creates the pokemon table if it doesn't exist yet.
func (s *SQLiteCardStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS pokemon (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			name           TEXT NOT NULL,
			set_name       TEXT NOT NULL,
			rarity         TEXT NOT NULL,
			purchase_price REAL,
			market_value   REAL,
			grading_score  REAL,
			image_url      TEXT
		)`)
	if err != nil {
		return pperr.StorageFault("init", err)
	}
	return nil
}

// Create inserts the card and returns the id SQLite assigned.
// A backend that cannot report the insert id is an unrecoverable fault.
func (s *SQLiteCardStore) Create(ctx context.Context, card *model.Card) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO pokemon (name, set_name, rarity, purchase_price, market_value, grading_score, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		card.Name, card.SetName, card.Rarity,
		card.PurchasePrice, card.MarketValue, card.GradingScore,
		nullable(card.ImageURL))
	if err != nil {
		return 0, pperr.StorageFault("create", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, pperr.StorageFault("create", fmt.Errorf("insert succeeded but no id was reported: %w", err))
	}
	return id, nil
}

// Get returns the card with the given id.
func (s *SQLiteCardStore) Get(ctx context.Context, id int64) (*model.Card, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, set_name, rarity, purchase_price, market_value, grading_score, image_url
		FROM pokemon WHERE id = ?`, id)

	card, err := scanCard(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pperr.CardNotFound(id)
		}
		return nil, pperr.StorageFault("read", err)
	}
	return card, nil
}

// List returns every card in insertion order.
func (s *SQLiteCardStore) List(ctx context.Context) ([]*model.Card, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, set_name, rarity, purchase_price, market_value, grading_score, image_url
		FROM pokemon ORDER BY id`)
	if err != nil {
		return nil, pperr.StorageFault("read", err)
	}
	defer rows.Close()

	cards := []*model.Card{} // Return empty slice, not nil
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, pperr.StorageFault("read", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, pperr.StorageFault("read", err)
	}
	return cards, nil
}

// Update overwrites all non-id fields of the matching row.
func (s *SQLiteCardStore) Update(ctx context.Context, card *model.Card) error {
	if !card.Persisted() {
		return pperr.InvalidField("id", "card must have an id to be updated")
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE pokemon
		SET name = ?, set_name = ?, rarity = ?, purchase_price = ?, market_value = ?, grading_score = ?, image_url = ?
		WHERE id = ?`,
		card.Name, card.SetName, card.Rarity,
		card.PurchasePrice, card.MarketValue, card.GradingScore,
		nullable(card.ImageURL), card.ID)
	if err != nil {
		return pperr.StorageFault("update", err)
	}
	// Zero rows affected is a no-op, not an error.
	return nil
}

// Delete removes the matching row.
func (s *SQLiteCardStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM pokemon WHERE id = ?`, id); err != nil {
		return pperr.StorageFault("delete", err)
	}
	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCard(sc scanner) (*model.Card, error) {
	var card model.Card
	var purchase, market, grade sql.NullFloat64
	var imageURL sql.NullString

	if err := sc.Scan(&card.ID, &card.Name, &card.SetName, &card.Rarity, &purchase, &market, &grade, &imageURL); err != nil {
		return nil, err
	}

	card.PurchasePrice = purchase.Float64
	card.MarketValue = market.Float64
	card.GradingScore = grade.Float64
	card.ImageURL = imageURL.String
	return &card, nil
}

// nullable maps the empty-string "absent" convention to NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
