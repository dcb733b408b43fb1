package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/DoyleJ11/lol-cooldowns/internal/champion"
)

// DataDragon reads Riot's static data. Every lookup is keyed by the current
// data-set version, resolved from versions.json on each call unless the
// reader is pinned to a version.
type DataDragon struct {
	baseURL    string
	locale     string
	version    string
	httpClient *http.Client
}

func NewDataDragon(baseURL, locale string, client *http.Client) *DataDragon {
	return &DataDragon{baseURL: strings.TrimRight(baseURL, "/"), locale: locale, httpClient: client}
}

func (d *DataDragon) Name() string { return "ddragon" }

// Pin returns a reader that serves every lookup from version without
// consulting versions.json.
func (d *DataDragon) Pin(version string) *DataDragon {
	pinned := *d
	pinned.version = version
	return &pinned
}

type ddragonChampion struct {
	Image struct {
		Full string `json:"full"`
	} `json:"image"`
	Spells []struct {
		Cooldown []float64 `json:"cooldown"`
	} `json:"spells"`
}

// Version returns the first, most recent, entry of versions.json.
func (d *DataDragon) Version(ctx context.Context) (string, error) {
	if d.version != "" {
		return d.version, nil
	}
	var versions []string
	if err := fetchJSON(ctx, d.httpClient, d.baseURL+"/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("%w: empty version manifest", ErrUnavailable)
	}
	return versions[0], nil
}

func (d *DataDragon) Profile(ctx context.Context, key string) (champion.Profile, error) {
	if key == "" {
		return champion.EmptyProfile(), fmt.Errorf("%w: empty key", ErrNotFound)
	}
	version, err := d.Version(ctx)
	if err != nil {
		return champion.EmptyProfile(), err
	}
	return d.ProfileAt(ctx, version, key)
}

// ProfileAt fetches a champion from an already resolved data-set version.
func (d *DataDragon) ProfileAt(ctx context.Context, version, key string) (champion.Profile, error) {
	var payload struct {
		Data map[string]ddragonChampion `json:"data"`
	}
	if err := fetchJSON(ctx, d.httpClient, d.dataURL(version, "champion/"+url.PathEscape(key)+".json"), &payload); err != nil {
		return champion.EmptyProfile(), err
	}

	data, ok := payload.Data[key]
	if !ok {
		return champion.EmptyProfile(), fmt.Errorf("%w: %s missing from data dragon payload", ErrNotFound, key)
	}
	// Spells are published in Q, W, E, R order.
	if len(data.Spells) < len(champion.Slots) {
		return champion.EmptyProfile(), fmt.Errorf("%w: %s has %d spells", ErrIncomplete, key, len(data.Spells))
	}

	var abilities [4]champion.Entry
	for _, slot := range champion.Slots {
		abilities[slot] = champion.Entry{Cooldown: data.Spells[slot].Cooldown}
	}
	icon := fmt.Sprintf("%s/cdn/%s/img/champion/%s", d.baseURL, version, data.Image.Full)
	return champion.NewProfile(icon, abilities), nil
}

// Catalog lists the champion keys of the current version in document order.
func (d *DataDragon) Catalog(ctx context.Context) ([]string, error) {
	version, err := d.Version(ctx)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Data json.RawMessage `json:"data"`
	}
	if err := fetchJSON(ctx, d.httpClient, d.dataURL(version, "champion.json"), &payload); err != nil {
		return nil, err
	}
	keys, err := objectKeys(payload.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse data dragon catalog: %w", ErrUnavailable, err)
	}
	return keys, nil
}

func (d *DataDragon) dataURL(version, file string) string {
	return fmt.Sprintf("%s/cdn/%s/data/%s/%s", d.baseURL, version, d.locale, file)
}
