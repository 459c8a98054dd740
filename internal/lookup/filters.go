package lookup

import (
	"sort"

	"github.com/cchiddy480/PokePort/internal/util"
)

// IsPromoSet reports whether a set name looks like a promotional release.
//
// The metadata source has no formal "promo" category, so this is a named
// heuristic: promotional sets are identified by names containing "promo"
// or "black star" (case-insensitive). Kept behind one function so it can
// be swapped if the source ever grows a real category.
func IsPromoSet(setName string) bool {
	return util.ContainsFold(setName, "promo") || util.ContainsFold(setName, "black star")
}

// PromoCards returns the cards whose set passes the promo heuristic.
func PromoCards(cards []Card) []Card {
	promos := []Card{}
	for _, card := range cards {
		if IsPromoSet(card.Set.Name) {
			promos = append(promos, card)
		}
	}
	return promos
}

// SetNames returns the sorted unique set names present in cards.
func SetNames(cards []Card) []string {
	return uniqueSetNames(cards, func(string) bool { return true })
}

// PromoSetNames returns the sorted unique promo set names present in cards.
func PromoSetNames(cards []Card) []string {
	return uniqueSetNames(cards, IsPromoSet)
}

func uniqueSetNames(cards []Card, keep func(string) bool) []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, card := range cards {
		name := card.Set.Name
		if name == "" || seen[name] || !keep(name) {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FilterBySet returns the cards belonging to exactly setName.
func FilterBySet(cards []Card, setName string) []Card {
	matched := []Card{}
	for _, card := range cards {
		if card.Set.Name == setName {
			matched = append(matched, card)
		}
	}
	return matched
}

// FilterByRarity returns the cards with the given rarity, compared
// case-insensitively.
func FilterByRarity(cards []Card, rarity string) []Card {
	matched := []Card{}
	for _, card := range cards {
		if util.EqualFold(card.Rarity, rarity) {
			matched = append(matched, card)
		}
	}
	return matched
}
