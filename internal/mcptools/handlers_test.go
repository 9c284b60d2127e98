package mcptools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipefold/hostprobe/internal/hostapp"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func noEnv(string) (string, bool) { return "", false }

// newTestService builds a DetectService over a small fixed registry whose
// probes and executable path are fully controlled by the test.
func newTestService(t *testing.T, nukePresent bool) *DetectService {
	t.Helper()

	reg, err := hostapp.NewRegistry(
		hostapp.Descriptor{
			ID:                "maya",
			Probe:             hostapp.Never(),
			ExecutableAliases: []string{"maya", "mayapy"},
		},
		hostapp.Descriptor{
			ID:    "nuke",
			Probe: func() bool { return nukePresent },
		},
		hostapp.Descriptor{
			ID:    "houdini",
			Probe: hostapp.Never(),
		},
	)
	require.NoError(t, err)

	return NewDetectService(reg, hostapp.DefaultVersionProviders(),
		hostapp.WithLookupEnv(noEnv),
		hostapp.WithExecutablePath("/usr/bin/python3"),
	)
}

// ---------------------------------------------------------------------------
// detect_host
// ---------------------------------------------------------------------------

func TestDetectHost_ProbeMatch(t *testing.T) {
	svc := newTestService(t, true)

	_, out, err := svc.DetectHost(context.Background(), nil, DetectHostInput{})
	require.NoError(t, err)
	assert.True(t, out.Detected)
	assert.Equal(t, "nuke", out.ID)
	assert.Equal(t, "Nuke", out.DisplayName)
	assert.Equal(t, "probe", out.Strategy)
}

func TestDetectHost_NoMatch(t *testing.T) {
	svc := newTestService(t, false)

	_, out, err := svc.DetectHost(context.Background(), nil, DetectHostInput{})
	require.NoError(t, err)
	assert.False(t, out.Detected)
	assert.Empty(t, out.ID)
	assert.Equal(t, "none", out.Strategy)
}

func TestDetectHost_PerCallOverride(t *testing.T) {
	svc := newTestService(t, true)

	_, out, err := svc.DetectHost(context.Background(), nil, DetectHostInput{Override: "houdini"})
	require.NoError(t, err)
	assert.True(t, out.Detected)
	assert.Equal(t, "houdini", out.ID)
	assert.Equal(t, "override", out.Strategy)
}

func TestDetectHost_UnknownOverrideYieldsNoMatch(t *testing.T) {
	// nuke's probe would succeed, but a bad override must not fall through.
	svc := newTestService(t, true)

	_, out, err := svc.DetectHost(context.Background(), nil, DetectHostInput{Override: "not_an_app"})
	require.NoError(t, err)
	assert.False(t, out.Detected)
	assert.Equal(t, "none", out.Strategy)
}

// ---------------------------------------------------------------------------
// list_hosts
// ---------------------------------------------------------------------------

func TestListHosts(t *testing.T) {
	svc := newTestService(t, false)

	_, out, err := svc.ListHosts(context.Background(), nil, ListHostsInput{})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	require.Len(t, out.Applications, 3)
	assert.Equal(t, "maya", out.Applications[0].ID)
	assert.Equal(t, []string{"maya", "mayapy"}, out.Applications[0].ExecutableAliases)
	assert.True(t, out.Applications[0].HasVersionProvider)
	assert.False(t, out.Applications[1].HasVersionProvider)
}

// ---------------------------------------------------------------------------
// probe_host
// ---------------------------------------------------------------------------

func TestProbeHost(t *testing.T) {
	svc := newTestService(t, true)

	_, out, err := svc.ProbeHost(context.Background(), nil, ProbeHostInput{ID: "nuke"})
	require.NoError(t, err)
	assert.Equal(t, "nuke", out.ID)
	assert.True(t, out.Matched)

	_, out, err = svc.ProbeHost(context.Background(), nil, ProbeHostInput{ID: "maya"})
	require.NoError(t, err)
	assert.False(t, out.Matched)
}

func TestProbeHost_UnknownID(t *testing.T) {
	svc := newTestService(t, false)

	_, _, err := svc.ProbeHost(context.Background(), nil, ProbeHostInput{ID: "krita_x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "krita_x")
}

func TestProbeHost_MissingID(t *testing.T) {
	svc := newTestService(t, false)

	_, _, err := svc.ProbeHost(context.Background(), nil, ProbeHostInput{})
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// host_version
// ---------------------------------------------------------------------------

func TestHostVersion_SupportedProvider(t *testing.T) {
	svc := newTestService(t, false)
	t.Setenv("HOUDINI_VERSION", "21.0.440")

	_, out, err := svc.HostVersion(context.Background(), nil, HostVersionInput{ID: "houdini"})
	require.NoError(t, err)
	assert.True(t, out.Supported)
	assert.Equal(t, "21.0.440", out.Version)
}

func TestHostVersion_NoProvider(t *testing.T) {
	svc := newTestService(t, false)

	_, out, err := svc.HostVersion(context.Background(), nil, HostVersionInput{ID: "nuke"})
	require.NoError(t, err)
	assert.False(t, out.Supported)
	assert.Empty(t, out.Version)
}

func TestHostVersion_UnknownID(t *testing.T) {
	svc := newTestService(t, false)

	_, _, err := svc.HostVersion(context.Background(), nil, HostVersionInput{ID: "ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}
