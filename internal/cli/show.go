package cli

import (
	"context"
	"fmt"

	"github.com/amterp/ra"
)

func registerShow(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("show")
	cmd.SetDescription("Display card details")

	ctx.ShowID, _ = ra.NewInt("id").
		SetUsage("Card ID").
		Register(cmd)

	ctx.ShowUsed, _ = parent.RegisterCmd(cmd)
}

func runShow(id int64, jsonOutput bool) {
	app, err := NewApp(true)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	card, err := app.Collection.Get(context.Background(), id)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(card); err != nil {
			Fatal(err)
		}
		return
	}

	const labelWidth = 15
	fmt.Println(RenderBold(card.Name) + " " + RenderID(card.ID))
	fmt.Println(LabelValue("Set", card.SetName, labelWidth))
	fmt.Println(LabelValue("Rarity", card.Rarity, labelWidth))
	fmt.Println(LabelValue("Purchase price", fmt.Sprintf("%.2f", card.PurchasePrice), labelWidth))
	fmt.Println(LabelValue("Market value", fmt.Sprintf("%.2f", card.MarketValue), labelWidth))
	if card.PurchasePrice != 0 {
		fmt.Println(LabelValue("ROI", fmt.Sprintf("%+.1f%%", card.ROI()*100), labelWidth))
	}
	if card.GradingScore != 0 {
		fmt.Println(LabelValue("Grade", fmt.Sprintf("%.2f", card.GradingScore), labelWidth))
	}
	if card.ImageURL != "" {
		fmt.Println(LabelValue("Image", RenderURL(card.ImageURL), labelWidth))
	}
}
