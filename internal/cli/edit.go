package cli

import (
	"context"
	"fmt"

	"github.com/amterp/ra"

	"github.com/cchiddy480/PokePort/internal/service"
)

func registerEdit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("edit")
	cmd.SetDescription("Edit a card in your collection")

	ctx.EditID, _ = ra.NewInt("id").
		SetUsage("Card ID").
		Register(cmd)

	ctx.EditUsed, _ = parent.RegisterCmd(cmd)
}

func runEdit(id int64, nonInteractive bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	ctx := context.Background()
	card, err := app.Collection.Get(ctx, id)
	if err != nil {
		Fatal(err)
	}

	// Select field to edit
	fields := []string{"name", "set name", "rarity", "purchase price", "market value", "grading score", "image url"}
	field, err := app.Prompter.Select("Select field to edit", fields)
	if err != nil {
		Fatal(err)
	}

	input := service.EditCardInput{ID: card.ID}
	switch field {
	case "name":
		value, err := app.Prompter.Input("New name", card.Name)
		if err != nil {
			Fatal(err)
		}
		input.Name = &value
	case "set name":
		value, err := app.Prompter.Input("New set name", card.SetName)
		if err != nil {
			Fatal(err)
		}
		input.SetName = &value
	case "rarity":
		value, err := app.Prompter.Input("New rarity", card.Rarity)
		if err != nil {
			Fatal(err)
		}
		input.Rarity = &value
	case "purchase price":
		value, err := promptFloat(app.Prompter, fmt.Sprintf("New purchase price (was %.2f)", card.PurchasePrice), "purchase_price")
		if err != nil {
			Fatal(err)
		}
		input.PurchasePrice = &value
	case "market value":
		value, err := promptFloat(app.Prompter, fmt.Sprintf("New market value (was %.2f)", card.MarketValue), "market_value")
		if err != nil {
			Fatal(err)
		}
		input.MarketValue = &value
	case "grading score":
		grade, err := promptSubScores(app)
		if err != nil {
			Fatal(err)
		}
		input.GradingScore = &grade
	case "image url":
		value, err := app.Prompter.Input("New image URL (empty to clear)", card.ImageURL)
		if err != nil {
			Fatal(err)
		}
		input.ImageURL = &value
	}

	updated, err := app.Collection.Edit(ctx, input)
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Updated card %s: %s", RenderID(updated.ID), updated.Name)
}
