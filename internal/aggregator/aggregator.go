// Package aggregator builds the cooldown payload for every champion of the
// live match.
package aggregator

import (
	"context"
	"time"

	"github.com/DoyleJ11/lol-cooldowns/internal/champion"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type RosterReader interface {
	Read(ctx context.Context) (champion.Roster, error)
}

type ProfileResolver interface {
	Resolve(ctx context.Context, name string) champion.Profile
}

// Result is the response payload. Both maps are keyed by the champion name
// reported by telemetry, before any alias substitution. Lineup is only set
// for a regular 5/5 match and is carried by the stream, not by /cooldowns.
type Result struct {
	ChampionCooldowns map[string]champion.Profile `json:"championCooldowns"`
	TeamChampDict     map[string]champion.Team    `json:"teamChampDict"`
	Lineup            *champion.Lineup            `json:"-"`
}

type Aggregator struct {
	reader   RosterReader
	resolver ProfileResolver
	workers  int
	logger   *zap.Logger
}

func New(reader RosterReader, resolver ProfileResolver, workers int, logger *zap.Logger) *Aggregator {
	if workers <= 0 {
		workers = champion.RosterSize
	}
	return &Aggregator{reader: reader, resolver: resolver, workers: workers, logger: logger.Named("aggregator")}
}

// Collect reads the live roster and resolves it. Only a roster failure is
// returned; every per-champion failure degrades to an empty profile.
func (a *Aggregator) Collect(ctx context.Context) (Result, error) {
	roster, err := a.reader.Read(ctx)
	if err != nil {
		return Result{}, err
	}
	res := a.Build(ctx, roster)
	lineup, err := roster.Lineup()
	if err != nil {
		// Practice tool and custom games are still served.
		a.logger.Warn("irregular roster", zap.Error(err), zap.Int("players", len(roster)))
		return res, nil
	}
	res.Lineup = &lineup
	return res, nil
}

// Build resolves every roster entry. Champions resolve in parallel, bounded
// by the worker count; each champion's own stages stay sequential.
func (a *Aggregator) Build(ctx context.Context, roster champion.Roster) Result {
	start := time.Now()
	profiles := make([]champion.Profile, len(roster))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, p := range roster {
		g.Go(func() error {
			profiles[i] = a.resolver.Resolve(gctx, p.Champion)
			return nil
		})
	}
	_ = g.Wait()

	res := Result{
		ChampionCooldowns: make(map[string]champion.Profile, len(roster)),
		TeamChampDict:     make(map[string]champion.Team, len(roster)),
	}
	unresolved := 0
	for i, p := range roster {
		res.ChampionCooldowns[p.Champion] = profiles[i]
		res.TeamChampDict[p.Champion] = p.Team
		if !profiles[i].Resolved() {
			unresolved++
		}
	}

	a.logger.Debug("roster resolved",
		zap.Int("players", len(roster)),
		zap.Int("unresolved", unresolved),
		zap.Duration("took", time.Since(start)))
	return res
}
