package cli

import (
	"context"
	"fmt"

	"github.com/cchiddy480/PokePort/internal/lookup"
	"github.com/cchiddy480/PokePort/internal/service"
)

const allSetsOption = "All sets"

// addViaLookup resolves a card against the online card database, then
// walks the user through pricing and grading before persisting it.
//
// Lookup failures are reported and abandon the flow without touching the
// store; they never kill an interactive session.
func addViaLookup(app *App, name string) {
	app.WarnIfNoAPIKey()

	var err error
	if name == "" {
		name, err = promptRequired(app.Prompter, "Card name to look up", "name")
		if err != nil {
			Fatal(err)
		}
	}

	ctx := context.Background()
	cards, err := app.Lookup.SearchByName(ctx, name)
	if err != nil {
		PrintError("Lookup failed: %v", err)
		return
	}
	if len(cards) == 0 {
		PrintInfo("No cards found for %q", name)
		return
	}

	card, ok := pickCandidate(app, cards)
	if !ok {
		return
	}
	details := card.Details()

	number := details.CardNumber
	if details.TotalCards != "" {
		number = fmt.Sprintf("%s/%s", details.CardNumber, details.TotalCards)
	}
	PrintInfo("Selected %s - %s (%s) %s", RenderBold(details.Name), details.SetName, number, RenderMuted(details.Rarity))

	purchase, err := promptFloat(app.Prompter, "Purchase price (optional)", "purchase_price")
	if err != nil {
		Fatal(err)
	}
	market, err := promptFloat(app.Prompter, "Market value (optional)", "market_value")
	if err != nil {
		Fatal(err)
	}
	grade, err := resolveGrade(app, "")
	if err != nil {
		Fatal(err)
	}

	added, err := app.Collection.Add(ctx, service.AddCardInput{
		Name:          details.Name,
		SetName:       details.SetName,
		Rarity:        details.Rarity,
		PurchasePrice: purchase,
		MarketValue:   market,
		GradingScore:  grade,
		ImageURL:      details.ImageURL,
	})
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Added card %s: %s (%s)", RenderID(added.ID), added.Name, added.SetName)
}

// pickCandidate narrows a result list by set, then lets the user choose
// one card. Returns false if the user backed out.
func pickCandidate(app *App, cards []lookup.Card) (lookup.Card, bool) {
	sets := lookup.SetNames(cards)
	if promos := lookup.PromoSetNames(cards); len(promos) > 0 {
		PrintInfo("Promo sets available: %s", RenderMuted(fmt.Sprintf("%v", promos)))
	}

	if len(sets) > 1 {
		choice, err := app.Prompter.Select("Filter by set", append([]string{allSetsOption}, sets...))
		if err != nil {
			Fatal(err)
		}
		if choice != allSetsOption {
			cards = lookup.FilterBySet(cards, choice)
		}
	}
	if len(cards) == 0 {
		PrintInfo("No cards left after filtering")
		return lookup.Card{}, false
	}

	options := make([]string, len(cards))
	for i, card := range cards {
		options[i] = fmt.Sprintf("%d. %s", i+1, formatCandidate(card))
	}

	choice, err := app.Prompter.Select("Select card", options)
	if err != nil {
		Fatal(err)
	}
	for i, option := range options {
		if option == choice {
			return cards[i], true
		}
	}
	return lookup.Card{}, false
}

// formatCandidate renders one search result for display.
func formatCandidate(card lookup.Card) string {
	d := card.Details()
	name := d.Name
	if name == "" {
		name = "Unknown"
	}
	setName := d.SetName
	if setName == "" {
		setName = "Unknown Set"
	}
	number := d.CardNumber
	if number == "" {
		number = "?"
	}
	total := d.TotalCards
	if total == "" {
		total = "?"
	}
	rarity := d.Rarity
	if rarity == "" {
		rarity = "Unknown"
	}
	return fmt.Sprintf("%s - %s (%s/%s) - %s", name, setName, number, total, rarity)
}
