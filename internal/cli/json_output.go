package cli

import (
	"encoding/json"
	"fmt"

	"github.com/cchiddy480/PokePort/internal/lookup"
	"github.com/cchiddy480/PokePort/internal/model"
)

// ListOutput is the JSON shape of 'pokeport list --json'.
type ListOutput struct {
	Count int           `json:"count"`
	Cards []*model.Card `json:"cards"`
}

func NewListOutput(cards []*model.Card) ListOutput {
	return ListOutput{
		Count: len(cards),
		Cards: cards,
	}
}

// SearchOutput is the JSON shape of 'pokeport search --json'.
type SearchOutput struct {
	Count int              `json:"count"`
	Cards []lookup.Details `json:"cards"`
}

func NewSearchOutput(cards []lookup.Card) SearchOutput {
	details := make([]lookup.Details, 0, len(cards))
	for _, c := range cards {
		details = append(details, c.Details())
	}
	return SearchOutput{
		Count: len(details),
		Cards: details,
	}
}

func printJson(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
