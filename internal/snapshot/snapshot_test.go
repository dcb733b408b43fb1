package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/DoyleJ11/lol-cooldowns/internal/champion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubVersions string

func (s stubVersions) Version(ctx context.Context) (string, error) { return string(s), nil }

type stubCatalog struct {
	keys []string
	err  error
}

func (s stubCatalog) Catalog(ctx context.Context) ([]string, error) { return s.keys, s.err }

type countingResolver struct {
	calls atomic.Int32
}

// factory hands out c and records the version each run binds it to.
func (c *countingResolver) factory(versions *[]string) ResolverFactory {
	return func(version string) ProfileResolver {
		*versions = append(*versions, version)
		return c
	}
}

func (c *countingResolver) Resolve(ctx context.Context, name string) champion.Profile {
	c.calls.Add(1)
	if name == "Aphelios" {
		return champion.EmptyProfile()
	}
	return champion.NewProfile(name+".png", [4]champion.Entry{
		{Cooldown: []float64{9, 8}}, {Cooldown: []float64{5}}, {}, {Cooldown: []float64{120}},
	})
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestRun_WritesDatasetAndManifest(t *testing.T) {
	dir := t.TempDir()
	resolver := &countingResolver{}
	var bound []string
	b := NewBuilder(stubVersions("15.4.1"), stubCatalog{keys: []string{"AurelionSol", "MonkeyKing", "Aphelios"}}, resolver.factory(&bound), 2, zap.NewNop())

	m, err := b.Run(context.Background(), dir, false)
	require.NoError(t, err)
	assert.Equal(t, Manifest{CurrentVersion: "15.4.1", CurrentFile: "champion_cooldowns_15.4.1.json"}, m)

	var manifest Manifest
	readJSON(t, filepath.Join(dir, "manifest.json"), &manifest)
	assert.Equal(t, m, manifest)

	var data map[string]map[string]string
	readJSON(t, filepath.Join(dir, m.CurrentFile), &data)
	require.Len(t, data, 3)
	assert.Equal(t, "MonkeyKing.png", data["Wukong"]["champIcon"])
	assert.Equal(t, "9 / 8", data["Aurelion Sol"]["Q"])
	assert.Empty(t, data["Aphelios"])
	assert.Equal(t, int32(3), resolver.calls.Load())
	assert.Equal(t, []string{"15.4.1"}, bound)
}

func TestRun_SkipsExistingDatasetUnlessForced(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName("15.4.1")), []byte(`{}`), 0o644))

	resolver := &countingResolver{}
	var bound []string
	b := NewBuilder(stubVersions("15.4.1"), stubCatalog{keys: []string{"Ahri"}}, resolver.factory(&bound), 2, zap.NewNop())

	_, err := b.Run(context.Background(), dir, false)
	require.NoError(t, err)
	assert.Equal(t, int32(0), resolver.calls.Load())
	assert.FileExists(t, filepath.Join(dir, "manifest.json"))

	_, err = b.Run(context.Background(), dir, true)
	require.NoError(t, err)
	assert.Equal(t, int32(1), resolver.calls.Load())
}

func TestBuild_CatalogFailures(t *testing.T) {
	catalogErr := errors.New("cdn down")

	var bound []string
	resolver := &countingResolver{}

	_, err := NewBuilder(stubVersions("1"), stubCatalog{err: catalogErr}, resolver.factory(&bound), 2, zap.NewNop()).Build(context.Background(), "1")
	assert.ErrorIs(t, err, catalogErr)

	_, err = NewBuilder(stubVersions("1"), stubCatalog{}, resolver.factory(&bound), 2, zap.NewNop()).Build(context.Background(), "1")
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	assert.Empty(t, bound)
}
