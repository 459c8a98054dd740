package lookup

import "strconv"

// Card is one record returned by the external card-metadata service.
// Every field may be absent in the source payload; absent strings decode
// to "" and absent numbers to 0.
type Card struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Rarity string `json:"rarity"`
	Images Images `json:"images"`
	Set    Set    `json:"set"`
}

// Images holds the image variants the service exposes.
type Images struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

// Set identifies the release a card belongs to.
type Set struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// searchResponse is the service's envelope for card searches.
type searchResponse struct {
	Data []Card `json:"data"`
}

// Details is a Card reduced to the fields a collection record needs,
// plus display-only number fields. Empty string means absent throughout,
// matching the model's convention.
type Details struct {
	Name       string `json:"name"`
	SetName    string `json:"set_name"`
	Rarity     string `json:"rarity"`
	ImageURL   string `json:"image_url,omitempty"`
	CardNumber string `json:"card_number,omitempty"`
	TotalCards string `json:"total_cards,omitempty"`
}

// Details reduces the card to its collection-relevant fields.
func (c Card) Details() Details {
	total := ""
	if c.Set.Total > 0 {
		total = strconv.Itoa(c.Set.Total)
	}
	return Details{
		Name:       c.Name,
		SetName:    c.Set.Name,
		Rarity:     c.Rarity,
		ImageURL:   c.Images.Small,
		CardNumber: c.Number,
		TotalCards: total,
	}
}
