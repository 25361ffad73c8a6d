package core

// Details is the projection of a PokéAPI pokemon resource that pokelens
// reports. A Details value is only ever built from a complete response.
type Details struct {
	PokemonName    string   `json:"pokemon_name" yaml:"pokemon_name"`
	BaseExperience int      `json:"base_experience" yaml:"base_experience"`
	Height         int      `json:"height" yaml:"height"`
	Weight         int      `json:"weight" yaml:"weight"`
	Abilities      []string `json:"abilities" yaml:"abilities"`
}
