package cli

import (
	"context"
	"fmt"

	"github.com/amterp/ra"

	"github.com/cchiddy480/PokePort/internal/model"
)

func registerList(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("list")
	cmd.SetDescription("List your collection")

	ctx.ListUsed, _ = parent.RegisterCmd(cmd)
}

func runList(jsonOutput bool) {
	app, err := NewApp(true)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	printCollection(app, jsonOutput)
}

func printCollection(app *App, jsonOutput bool) {
	cards, err := app.Collection.List(context.Background())
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewListOutput(cards)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(cards) == 0 {
		PrintInfo("No cards in your collection yet")
		return
	}

	var totalPaid, totalValue float64
	for _, card := range cards {
		fmt.Println(formatCardLine(card))
		totalPaid += card.PurchasePrice
		totalValue += card.MarketValue
	}

	summary := fmt.Sprintf("%d cards, paid %.2f, worth %.2f", len(cards), totalPaid, totalValue)
	if totalPaid > 0 {
		summary += fmt.Sprintf(" (%+.1f%%)", (totalValue-totalPaid)/totalPaid*100)
	}
	PrintInfo("%s", RenderMuted(summary))
}

func formatCardLine(card *model.Card) string {
	line := fmt.Sprintf("%s %s", RenderID(card.ID), RenderBold(card.Name))
	if card.SetName != "" {
		line += fmt.Sprintf(" - %s", card.SetName)
	}
	if card.Rarity != "" {
		line += fmt.Sprintf(" %s", RenderMuted("("+card.Rarity+")"))
	}
	if card.GradingScore != 0 {
		line += fmt.Sprintf("  grade %.2f", card.GradingScore)
	}
	if card.PurchasePrice != 0 || card.MarketValue != 0 {
		line += fmt.Sprintf("  %.2f → %.2f", card.PurchasePrice, card.MarketValue)
	}
	if card.PurchasePrice != 0 {
		line += RenderMuted(fmt.Sprintf(" (%+.1f%%)", card.ROI()*100))
	}
	return line
}
