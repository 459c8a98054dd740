package lookup

import (
	"fmt"
	"strings"

	"github.com/cchiddy480/PokePort/internal/util"
)

// Query holds advanced-search filters. Empty fields are omitted from the
// outbound query.
type Query struct {
	Name    string
	SetName string
	Number  string
	Rarity  string
}

// wantsPromos reports whether the set filter is really a promo request.
// See IsPromoSet for why promos need special handling.
func (q Query) wantsPromos() bool {
	return util.ContainsFold(q.SetName, "promo")
}

// encode renders the filters into the service's mini query language:
// field:"value" terms joined with AND. The set filter is dropped when
// includeSet is false (promo searches post-filter instead).
func (q Query) encode(includeSet bool) string {
	terms := []string{fmt.Sprintf("name:%q", q.Name)}
	if includeSet && q.SetName != "" {
		terms = append(terms, fmt.Sprintf("set.name:%q", q.SetName))
	}
	if q.Number != "" {
		terms = append(terms, fmt.Sprintf("number:%q", q.Number))
	}
	if q.Rarity != "" {
		terms = append(terms, fmt.Sprintf("rarity:%q", q.Rarity))
	}
	return strings.Join(terms, " AND ")
}

// cacheKey is the case-normalized parameter tuple identifying this query.
func (q Query) cacheKey() string {
	return strings.Join([]string{
		"advanced",
		util.Fold(q.Name),
		util.Fold(q.SetName),
		q.Number,
		util.Fold(q.Rarity),
	}, "|")
}
