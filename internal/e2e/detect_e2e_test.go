//go:build e2e

package e2e

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipefold/hostprobe/internal/config"
	"github.com/pipefold/hostprobe/internal/hostapp"
)

// fixtureDir returns the path to the pipeline_project test fixture.
func fixtureDir() string {
	return filepath.Join("..", "..", "testdata", "fixtures", "pipeline_project")
}

// buildFixtureRegistry loads the fixture config and applies it to the
// built-in catalog, the same path the CLI takes.
func buildFixtureRegistry(t *testing.T) (*hostapp.Registry, *config.Config) {
	t.Helper()

	cfg, err := config.Load(fixtureDir())
	require.NoError(t, err)

	reg, err := hostapp.NewRegistry(cfg.Apply(hostapp.DefaultCatalog())...)
	require.NoError(t, err)
	return reg, cfg
}

func TestE2E_ConfigOverrideForcesDetection(t *testing.T) {
	reg, cfg := buildFixtureRegistry(t)
	require.Equal(t, "houdini", cfg.Override)

	r := hostapp.NewResolver(reg,
		hostapp.WithOverride(cfg.Override),
		hostapp.WithExecutablePath("/usr/bin/python3"),
	)

	res := r.Resolve()
	require.NotNil(t, res.Descriptor)
	assert.Equal(t, "houdini", res.Descriptor.ID)
	assert.Equal(t, hostapp.StrategyOverride, res.Strategy)
}

func TestE2E_ConfigAliasDrivesExecutableDetection(t *testing.T) {
	reg, _ := buildFixtureRegistry(t)

	r := hostapp.NewResolver(reg,
		hostapp.WithLookupEnv(func(string) (string, bool) { return "", false }),
		hostapp.WithExecutablePath("/studio/tools/nuke16"),
	)

	res := r.Resolve()
	require.NotNil(t, res.Descriptor)
	assert.Equal(t, "nuke", res.Descriptor.ID)
	assert.Equal(t, hostapp.StrategyExecutable, res.Strategy)
}

func TestE2E_EnvironmentOverrideWinsOverEverything(t *testing.T) {
	reg, _ := buildFixtureRegistry(t)
	t.Setenv(hostapp.DefaultOverrideKey, "maya")

	r := hostapp.NewResolver(reg,
		hostapp.WithExecutablePath("/studio/tools/nuke16"),
	)

	res := r.Resolve()
	require.NotNil(t, res.Descriptor)
	assert.Equal(t, "maya", res.Descriptor.ID)
	assert.Equal(t, hostapp.StrategyOverride, res.Strategy)
}

func TestE2E_DisabledHostIsNeverDetected(t *testing.T) {
	reg, _ := buildFixtureRegistry(t)

	// The fixture disables shotgun; even its env marker must not match.
	t.Setenv("SHOTGUN_SITE", "https://studio.shotgunstudio.com")

	r := hostapp.NewResolver(reg,
		hostapp.WithLookupEnv(func(string) (string, bool) { return "", false }),
		hostapp.WithExecutablePath("/usr/bin/python3"),
	)

	d := r.Detect()
	if d != nil {
		assert.NotEqual(t, "shotgun", d.ID)
	}
}
