// Package snapshot writes the full champion cooldown dataset consumed by the
// overlay when no live match is running.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DoyleJ11/lol-cooldowns/internal/champion"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const manifestFile = "manifest.json"

var ErrEmptyCatalog = errors.New("champion catalog is empty")

type VersionSource interface {
	Version(ctx context.Context) (string, error)
}

type CatalogSource interface {
	Catalog(ctx context.Context) ([]string, error)
}

type ProfileResolver interface {
	Resolve(ctx context.Context, name string) champion.Profile
}

// ResolverFactory binds a resolver to the data-set version of one run.
type ResolverFactory func(version string) ProfileResolver

// Manifest points the overlay at the current dataset file.
type Manifest struct {
	CurrentVersion string `json:"currentVersion"`
	CurrentFile    string `json:"currentFile"`
}

type Builder struct {
	versions    VersionSource
	catalog     CatalogSource
	newResolver ResolverFactory
	workers     int
	logger      *zap.Logger
}

func NewBuilder(versions VersionSource, catalog CatalogSource, newResolver ResolverFactory, workers int, logger *zap.Logger) *Builder {
	if workers <= 0 {
		workers = 16
	}
	return &Builder{versions: versions, catalog: catalog, newResolver: newResolver, workers: workers, logger: logger.Named("snapshot")}
}

func FileName(version string) string {
	return fmt.Sprintf("champion_cooldowns_%s.json", version)
}

// Run writes the dataset for the current version into dir, unless it already
// exists and force is false, then always rewrites the manifest. The version
// is resolved once and shared by every lookup of the run.
func (b *Builder) Run(ctx context.Context, dir string, force bool) (Manifest, error) {
	version, err := b.versions.Version(ctx)
	if err != nil {
		return Manifest{}, fmt.Errorf("resolve version: %w", err)
	}
	m := Manifest{CurrentVersion: version, CurrentFile: FileName(version)}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Manifest{}, err
	}
	path := filepath.Join(dir, m.CurrentFile)

	if _, err := os.Stat(path); err == nil && !force {
		b.logger.Info("dataset already exists, skipping rebuild", zap.String("path", path))
	} else {
		data, err := b.Build(ctx, version)
		if err != nil {
			return Manifest{}, err
		}
		if err := writeJSON(path, data); err != nil {
			return Manifest{}, err
		}
		b.logger.Info("dataset written", zap.String("path", path), zap.Int("champions", len(data)))
	}

	if err := writeJSON(filepath.Join(dir, manifestFile), m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Build resolves every catalog champion against version, keyed by display name.
func (b *Builder) Build(ctx context.Context, version string) (map[string]champion.Profile, error) {
	start := time.Now()
	keys, err := b.catalog.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	if len(keys) == 0 {
		return nil, ErrEmptyCatalog
	}

	resolver := b.newResolver(version)
	profiles := make([]champion.Profile, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, key := range keys {
		g.Go(func() error {
			profiles[i] = resolver.Resolve(gctx, key)
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(map[string]champion.Profile, len(keys))
	var unresolved []string
	for i, key := range keys {
		out[champion.DisplayName(key)] = profiles[i]
		if !profiles[i].Resolved() {
			unresolved = append(unresolved, key)
		}
	}
	b.logger.Info("catalog resolved",
		zap.Int("champions", len(keys)),
		zap.Strings("unresolved", unresolved),
		zap.Duration("took", time.Since(start)))
	return out, nil
}

func writeJSON(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}
