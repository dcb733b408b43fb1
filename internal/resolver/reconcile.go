package resolver

import (
	"context"
	"strings"

	"github.com/DoyleJ11/lol-cooldowns/internal/fuzzy"
	"go.uber.org/zap"
)

// Choice is the catalog name picked for an unresolved champion and the
// provider trusted for it. Fallback is queried when Source misses.
type Choice struct {
	Name     string
	Source   Source
	Fallback Source
}

// Reconciler picks the nearest catalog name across both providers.
type Reconciler struct {
	primary   Source
	secondary Source
	logger    *zap.Logger
}

func NewReconciler(primary, secondary Source, logger *zap.Logger) *Reconciler {
	return &Reconciler{primary: primary, secondary: secondary, logger: logger}
}

// Reconcile matches name against each provider's catalog, fetched fresh.
// When both closest matches agree the primary is trusted; when they differ
// the secondary is trusted with its own match. A provider whose catalog is
// unavailable casts no vote. A blank name never matches.
func (rc *Reconciler) Reconcile(ctx context.Context, name string) (Choice, bool) {
	if strings.TrimSpace(name) == "" {
		return Choice{}, false
	}
	primaryMatch, primaryOK := rc.closest(ctx, rc.primary, name)
	secondaryMatch, secondaryOK := rc.closest(ctx, rc.secondary, name)

	switch {
	case primaryOK && secondaryOK && primaryMatch == secondaryMatch:
		return Choice{Name: primaryMatch, Source: rc.primary, Fallback: rc.secondary}, true
	case secondaryOK:
		if primaryOK {
			rc.logger.Debug("closest matches disagree, trusting secondary",
				zap.String("champion", name),
				zap.String(rc.primary.Name(), primaryMatch),
				zap.String(rc.secondary.Name(), secondaryMatch))
		}
		return Choice{Name: secondaryMatch, Source: rc.secondary, Fallback: rc.primary}, true
	case primaryOK:
		return Choice{Name: primaryMatch, Source: rc.primary, Fallback: rc.secondary}, true
	default:
		return Choice{}, false
	}
}

func (rc *Reconciler) closest(ctx context.Context, src Source, name string) (string, bool) {
	catalog, err := src.Catalog(ctx)
	if err != nil {
		rc.logger.Debug("catalog unavailable", zap.String("source", src.Name()), zap.Error(err))
		return "", false
	}
	match, _, ok := fuzzy.Closest(name, catalog)
	return match, ok
}
