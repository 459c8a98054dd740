// Package lookup resolves card identity against an external card-metadata
// service. Searches are memoized per parameter tuple for a short TTL, and
// failures are reported as typed errors so callers can tell "no matches"
// apart from "lookup failed".
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cchiddy480/PokePort/internal/util"
)

const (
	defaultTimeout          = 10 * time.Second
	defaultCacheTTL         = 5 * time.Minute
	defaultPageSize         = 250
	defaultAdvancedPageSize = 100
)

// Options configures a Client. Zero values fall back to defaults;
// BaseURL and APIKey come from application config.
type Options struct {
	BaseURL          string
	APIKey           string
	Timeout          time.Duration
	CacheTTL         time.Duration
	PageSize         int
	AdvancedPageSize int
}

// Client queries the external card-metadata service. Each Client owns its
// result cache; there is no package-level state.
type Client struct {
	http             *http.Client
	baseURL          string
	apiKey           string
	pageSize         int
	advancedPageSize int
	cache            *resultCache
}

// NewClient creates a lookup client.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.AdvancedPageSize <= 0 {
		opts.AdvancedPageSize = defaultAdvancedPageSize
	}

	return &Client{
		http:             &http.Client{Timeout: opts.Timeout},
		baseURL:          opts.BaseURL,
		apiKey:           opts.APIKey,
		pageSize:         opts.PageSize,
		advancedPageSize: opts.AdvancedPageSize,
		cache:            newResultCache(opts.CacheTTL),
	}
}

// SearchByName returns all cards whose name matches (server-side match
// semantics). Empty slice with nil error means genuinely no matches.
func (c *Client) SearchByName(ctx context.Context, name string) ([]Card, error) {
	key := "name|" + util.Fold(name)
	if cached, ok := c.cache.get(key); ok {
		return cached, nil
	}

	cards, err := c.fetch(ctx, fmt.Sprintf("name:%q", name), c.pageSize)
	if err != nil {
		return nil, err
	}

	c.cache.set(key, cards)
	return cards, nil
}

// SearchAdvanced combines all supplied non-empty filters into one
// conjunctive query. When the set filter asks for promos, the set term is
// dropped from the outbound query and results are post-filtered through
// the promo heuristic instead (see IsPromoSet).
func (c *Client) SearchAdvanced(ctx context.Context, q Query) ([]Card, error) {
	key := q.cacheKey()
	if cached, ok := c.cache.get(key); ok {
		return cached, nil
	}

	wantsPromos := q.wantsPromos()
	cards, err := c.fetch(ctx, q.encode(!wantsPromos), c.advancedPageSize)
	if err != nil {
		return nil, err
	}
	if wantsPromos {
		cards = PromoCards(cards)
	}

	c.cache.set(key, cards)
	return cards, nil
}

// SuggestPromos searches by name and keeps only promotional cards.
func (c *Client) SuggestPromos(ctx context.Context, name string) ([]Card, error) {
	cards, err := c.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return PromoCards(cards), nil
}

// ClearCache drops all memoized results unconditionally.
func (c *Client) ClearCache() {
	c.cache.clear()
}

// fetch performs one GET against the /cards search endpoint.
func (c *Client) fetch(ctx context.Context, query string, pageSize int) ([]Card, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("pageSize", strconv.Itoa(pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cards?"+params.Encode(), nil)
	if err != nil {
		return nil, transportError(err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrTransport, resp.Status)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, decodeError(err)
	}

	if parsed.Data == nil {
		return []Card{}, nil // Return empty slice, not nil
	}
	return parsed.Data, nil
}
