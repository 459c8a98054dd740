package cli

import (
	"context"
	"fmt"

	"github.com/amterp/ra"

	"github.com/cchiddy480/PokePort/internal/lookup"
)

func registerSearch(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("search")
	cmd.SetDescription("Search the online card database")

	ctx.SearchName, _ = ra.NewString("name").
		SetUsage("Card name").
		Register(cmd)

	ctx.SearchSet, _ = ra.NewString("set").
		SetShort("s").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Filter by set name (\"promo\" triggers the promo heuristic)").
		Register(cmd)

	ctx.SearchNumber, _ = ra.NewString("number").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Filter by card number").
		Register(cmd)

	ctx.SearchRarity, _ = ra.NewString("rarity").
		SetShort("r").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Filter by rarity").
		Register(cmd)

	ctx.SearchPromos, _ = ra.NewBool("promos").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Show only promotional cards").
		Register(cmd)

	ctx.SearchUsed, _ = parent.RegisterCmd(cmd)
}

func runSearch(name, setName, number, rarity string, promos, jsonOutput bool) {
	app, err := NewApp(true)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()
	app.WarnIfNoAPIKey()

	ctx := context.Background()
	var cards []lookup.Card
	switch {
	case promos:
		cards, err = app.Lookup.SuggestPromos(ctx, name)
	case setName == "" && number == "" && rarity == "":
		cards, err = app.Lookup.SearchByName(ctx, name)
	default:
		cards, err = app.Lookup.SearchAdvanced(ctx, lookup.Query{
			Name:    name,
			SetName: setName,
			Number:  number,
			Rarity:  rarity,
		})
	}
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewSearchOutput(cards)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(cards) == 0 {
		PrintInfo("No cards found")
		return
	}

	fmt.Printf("Found %d cards:\n", len(cards))
	for i, card := range cards {
		fmt.Printf("  %d. %s\n", i+1, formatCandidate(card))
	}
	if sets := lookup.SetNames(cards); len(sets) > 1 {
		PrintInfo("Sets: %s", RenderMuted(fmt.Sprintf("%v", sets)))
	}
}
