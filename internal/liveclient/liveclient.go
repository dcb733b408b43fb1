// Package liveclient reads the roster of the running match from the game
// client's local live-data API.
package liveclient

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/DoyleJ11/lol-cooldowns/internal/champion"
)

// ErrNoLiveGame is returned for any failure to read the roster. Callers treat
// it as fatal for the request.
var ErrNoLiveGame = errors.New("live game data unavailable")

const (
	teamOrder = "ORDER"
	teamChaos = "CHAOS"
)

type player struct {
	ChampionName string `json:"championName"`
	Team         string `json:"team"`
}

type allGameData struct {
	AllPlayers []player `json:"allPlayers"`
}

// Reader queries the live client API. It serves a self-signed certificate,
// so verification is disabled on this client only.
type Reader struct {
	url        string
	httpClient *http.Client
}

func NewReader(url string, timeout time.Duration) *Reader {
	return &Reader{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

// Read returns the full roster or ErrNoLiveGame; never a partial roster.
func (r *Reader) Read(ctx context.Context) (champion.Roster, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoLiveGame, err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoLiveGame, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrNoLiveGame, resp.StatusCode)
	}

	var data allGameData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: parse game data: %w", ErrNoLiveGame, err)
	}
	return toRoster(data.AllPlayers)
}

func toRoster(players []player) (champion.Roster, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: no players in game data", ErrNoLiveGame)
	}
	roster := make(champion.Roster, 0, len(players))
	for _, p := range players {
		team, err := parseTeam(p.Team)
		if err != nil {
			return nil, err
		}
		roster = append(roster, champion.Player{Champion: p.ChampionName, Team: team})
	}
	return roster, nil
}

func parseTeam(team string) (champion.Team, error) {
	switch team {
	case teamOrder:
		return champion.TeamBlue, nil
	case teamChaos:
		return champion.TeamRed, nil
	default:
		return "", fmt.Errorf("%w: unknown team %q", ErrNoLiveGame, team)
	}
}
