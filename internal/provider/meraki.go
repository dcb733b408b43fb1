package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/DoyleJ11/lol-cooldowns/internal/champion"
)

// Meraki reads champion files from the Meraki Analytics CDN.
type Meraki struct {
	baseURL    string
	httpClient *http.Client
}

func NewMeraki(baseURL string, client *http.Client) *Meraki {
	return &Meraki{baseURL: strings.TrimRight(baseURL, "/"), httpClient: client}
}

func (m *Meraki) Name() string { return "meraki" }

type merakiChampion struct {
	Icon      string                     `json:"icon"`
	Abilities map[string][]merakiAbility `json:"abilities"`
}

type merakiAbility struct {
	Cooldown *struct {
		Modifiers []struct {
			Values []float64 `json:"values"`
		} `json:"modifiers"`
	} `json:"cooldown"`
	RechargeRate []float64 `json:"rechargeRate"`
}

// Profile fetches champions/{key}.json. Keys are case sensitive.
func (m *Meraki) Profile(ctx context.Context, key string) (champion.Profile, error) {
	if key == "" {
		return champion.EmptyProfile(), fmt.Errorf("%w: empty key", ErrNotFound)
	}

	var data merakiChampion
	if err := fetchJSON(ctx, m.httpClient, m.baseURL+"/champions/"+url.PathEscape(key)+".json", &data); err != nil {
		return champion.EmptyProfile(), err
	}

	var abilities [4]champion.Entry
	for _, slot := range champion.Slots {
		// The passive ("P") is never read.
		variants := data.Abilities[slot.String()]
		if len(variants) == 0 {
			return champion.EmptyProfile(), fmt.Errorf("%w: %s has no %s ability", ErrIncomplete, key, slot)
		}
		abilities[slot] = variants[0].entry()
	}
	return champion.NewProfile(data.Icon, abilities), nil
}

func (a merakiAbility) entry() champion.Entry {
	var e champion.Entry
	if a.Cooldown != nil && len(a.Cooldown.Modifiers) > 0 {
		e.Cooldown = a.Cooldown.Modifiers[0].Values
	}
	e.Recharge = a.RechargeRate
	return e
}

// Catalog lists every champion key in the order Meraki publishes them.
func (m *Meraki) Catalog(ctx context.Context) ([]string, error) {
	body, err := fetch(ctx, m.httpClient, m.baseURL+"/champions.json")
	if err != nil {
		return nil, err
	}
	keys, err := objectKeys(body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse meraki catalog: %w", ErrUnavailable, err)
	}
	return keys, nil
}
