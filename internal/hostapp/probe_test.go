package hostapp

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvSet(t *testing.T) {
	t.Setenv("HOSTPROBE_TEST_MARKER", "/opt/host")

	assert.True(t, EnvSet("HOSTPROBE_TEST_MARKER")())
	assert.True(t, EnvSet("HOSTPROBE_TEST_MISSING", "HOSTPROBE_TEST_MARKER")())
	assert.False(t, EnvSet("HOSTPROBE_TEST_MISSING")())
}

func TestEnvSet_EmptyValueDoesNotCount(t *testing.T) {
	t.Setenv("HOSTPROBE_TEST_EMPTY", "")
	assert.False(t, EnvSet("HOSTPROBE_TEST_EMPTY")())
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "host.cfg")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o644))

	assert.True(t, FileExists(marker)())
	assert.True(t, FileExists(filepath.Join(dir, "missing"), marker)())
	assert.False(t, FileExists(filepath.Join(dir, "missing"))())
}

func TestCommandOnPath(t *testing.T) {
	dir := t.TempDir()
	name := "hostprobe-fake-exe"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)

	assert.True(t, CommandOnPath("hostprobe-fake-exe")())
	assert.False(t, CommandOnPath("hostprobe-absent-exe")())
	assert.True(t, CommandOnPath("hostprobe-absent-exe", "hostprobe-fake-exe")())
}

func TestAnyOf(t *testing.T) {
	yes := func() bool { return true }
	no := func() bool { return false }

	assert.True(t, AnyOf(no, yes)())
	assert.False(t, AnyOf(no, no)())
	assert.False(t, AnyOf()())
}

func TestAnyOf_AbsorbsPanickingBranch(t *testing.T) {
	boom := func() bool { panic("import failed") }
	yes := func() bool { return true }

	assert.True(t, AnyOf(boom, yes)())
	assert.False(t, AnyOf(boom)())
}

func TestAllOf(t *testing.T) {
	yes := func() bool { return true }
	no := func() bool { return false }

	assert.True(t, AllOf(yes, yes)())
	assert.False(t, AllOf(yes, no)())
	assert.False(t, AllOf()())
}

func TestNever(t *testing.T) {
	assert.False(t, Never()())
}

func TestRunProbe(t *testing.T) {
	assert.True(t, RunProbe(func() bool { return true }))
	assert.False(t, RunProbe(func() bool { return false }))
	assert.False(t, RunProbe(func() bool { panic("missing host library") }))
	assert.False(t, RunProbe(nil))
}
