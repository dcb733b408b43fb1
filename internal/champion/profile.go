package champion

import "encoding/json"

// Profile is the resolved cooldown data of one champion. A profile is either
// fully resolved (icon plus all four abilities) or empty.
type Profile struct {
	Icon      string
	Abilities [4]Entry

	resolved bool
}

func NewProfile(icon string, abilities [4]Entry) Profile {
	return Profile{Icon: icon, Abilities: abilities, resolved: true}
}

// EmptyProfile is the profile of a champion no source could resolve.
func EmptyProfile() Profile {
	return Profile{}
}

func (p Profile) Resolved() bool {
	return p.resolved
}

type profileJSON struct {
	Icon string `json:"champIcon"`
	Q    Entry  `json:"Q"`
	W    Entry  `json:"W"`
	E    Entry  `json:"E"`
	R    Entry  `json:"R"`
}

func (p Profile) MarshalJSON() ([]byte, error) {
	if !p.resolved {
		return []byte("{}"), nil
	}
	return json.Marshal(profileJSON{
		Icon: p.Icon,
		Q:    p.Abilities[SlotQ],
		W:    p.Abilities[SlotW],
		E:    p.Abilities[SlotE],
		R:    p.Abilities[SlotR],
	})
}
