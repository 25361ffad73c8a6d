package pokeapitest

// Pokemon mirrors the subset of the PokéAPI pokemon resource the fixtures
// serve, including fields pokelens ignores.
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	BaseExperience int           `json:"base_experience"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	IsDefault      bool          `json:"is_default"`
	Order          int           `json:"order"`
	Abilities      []AbilitySlot `json:"abilities"`
}

type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pikachu is PokéAPI's pikachu resource, trimmed.
func Pikachu() Pokemon {
	return Pokemon{
		ID:             25,
		Name:           "pikachu",
		BaseExperience: 112,
		Height:         4,
		Weight:         60,
		IsDefault:      true,
		Order:          35,
		Abilities: []AbilitySlot{
			{Ability: NamedResource{Name: "static", URL: "https://pokeapi.co/api/v2/ability/9/"}, Slot: 1},
			{Ability: NamedResource{Name: "lightning-rod", URL: "https://pokeapi.co/api/v2/ability/31/"}, IsHidden: true, Slot: 3},
		},
	}
}

// Ditto is PokéAPI's ditto resource, trimmed.
func Ditto() Pokemon {
	return Pokemon{
		ID:             132,
		Name:           "ditto",
		BaseExperience: 101,
		Height:         3,
		Weight:         40,
		IsDefault:      true,
		Order:          214,
		Abilities: []AbilitySlot{
			{Ability: NamedResource{Name: "limber", URL: "https://pokeapi.co/api/v2/ability/7/"}, Slot: 1},
			{Ability: NamedResource{Name: "imposter", URL: "https://pokeapi.co/api/v2/ability/150/"}, IsHidden: true, Slot: 3},
		},
	}
}
