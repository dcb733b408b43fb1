// Package resolver turns a telemetry champion name into a cooldown profile by
// cascading through the data providers, falling back to the nearest catalog
// name when every exact lookup misses.
package resolver

import (
	"context"
	"errors"
	"strings"

	"github.com/DoyleJ11/lol-cooldowns/internal/champion"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var errUnresolved = errors.New("no source resolved the champion")

// Source is a champion data provider.
type Source interface {
	Name() string
	Profile(ctx context.Context, key string) (champion.Profile, error)
	Catalog(ctx context.Context) ([]string, error)
}

type Resolver struct {
	primary    Source
	secondary  Source
	reconciler *Reconciler
	logger     *zap.Logger
}

func New(primary, secondary Source, logger *zap.Logger) *Resolver {
	logger = logger.Named("resolver")
	return &Resolver{
		primary:    primary,
		secondary:  secondary,
		reconciler: NewReconciler(primary, secondary, logger),
		logger:     logger,
	}
}

// stage is one fallible lookup. A miss is any error or an unresolved profile.
type stage func(ctx context.Context) (champion.Profile, error)

func lookup(src Source, key string) stage {
	return func(ctx context.Context) (champion.Profile, error) {
		return src.Profile(ctx, key)
	}
}

// firstHit runs stages in order and stops at the first resolved profile.
// The returned error collects every miss and is nil on a hit.
func firstHit(ctx context.Context, stages ...stage) (champion.Profile, error) {
	var errs error
	for _, run := range stages {
		if err := ctx.Err(); err != nil {
			return champion.EmptyProfile(), multierr.Append(errs, err)
		}
		p, err := run(ctx)
		if err == nil && p.Resolved() {
			return p, nil
		}
		errs = multierr.Append(errs, err)
	}
	if errs == nil {
		errs = errUnresolved
	}
	return champion.EmptyProfile(), errs
}

// Resolve never fails: a champion no stage can resolve gets an empty profile.
// Stage order is alias, primary, secondary, then one closest-name attempt.
// A blank name resolves to the empty profile without touching any provider.
func (r *Resolver) Resolve(ctx context.Context, name string) champion.Profile {
	if strings.TrimSpace(name) == "" {
		return champion.EmptyProfile()
	}
	key := champion.ProviderKey(name)
	log := r.logger.With(zap.String("champion", name), zap.String("key", key))

	p, exactErr := firstHit(ctx, lookup(r.primary, key), lookup(r.secondary, key))
	if exactErr == nil {
		return p
	}
	if ctx.Err() != nil {
		log.Debug("resolution abandoned", zap.Error(ctx.Err()))
		return champion.EmptyProfile()
	}
	log.Debug("exact lookup missed", zap.Error(exactErr))

	choice, ok := r.reconciler.Reconcile(ctx, name)
	if !ok {
		log.Warn("champion unresolved, no catalog candidates", zap.Error(exactErr))
		return champion.EmptyProfile()
	}

	p, fuzzyErr := firstHit(ctx, lookup(choice.Source, choice.Name), lookup(choice.Fallback, choice.Name))
	if fuzzyErr != nil {
		log.Warn("champion unresolved",
			zap.String("closest", choice.Name),
			zap.Error(multierr.Append(exactErr, fuzzyErr)))
		return champion.EmptyProfile()
	}
	log.Info("resolved by closest match",
		zap.String("closest", choice.Name),
		zap.String("source", choice.Source.Name()))
	return p
}
