package hostapp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// VersionFunc returns a host application's version string.
//
// Version retrieval is a capability most hosts do not offer cheaply, so it
// is modeled as an optional map from id to provider rather than a required
// descriptor method.
type VersionFunc func() (string, error)

// DefaultVersionProviders returns version lookups for the hosts that expose
// a cheap version source. Absence of a provider is expected, not an error.
func DefaultVersionProviders() map[string]VersionFunc {
	return map[string]VersionFunc{
		"houdini": envVersion("HOUDINI_VERSION"),
		"gaffer":  envVersion("GAFFER_VERSION"),
		"maya":    mayaVersion,
	}
}

// LookupVersion runs the provider for id, if one exists. The second return
// reports whether a provider is registered at all.
func LookupVersion(providers map[string]VersionFunc, id string) (string, bool, error) {
	fn, ok := providers[id]
	if !ok {
		return "", false, nil
	}
	v, err := fn()
	if err != nil {
		return "", true, err
	}
	return v, true, nil
}

func envVersion(key string) VersionFunc {
	return func() (string, error) {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
		return "", fmt.Errorf("hostapp: %s is not set", key)
	}
}

// mayaVersion derives the Maya version from the trailing digits of the
// MAYA_LOCATION install directory (e.g. /usr/autodesk/maya2026 -> "2026").
func mayaVersion() (string, error) {
	loc := os.Getenv("MAYA_LOCATION")
	if loc == "" {
		return "", fmt.Errorf("hostapp: MAYA_LOCATION is not set")
	}
	base := filepath.Base(strings.TrimRight(loc, `/\`))
	i := len(base)
	for i > 0 && base[i-1] >= '0' && base[i-1] <= '9' {
		i--
	}
	if i == len(base) {
		return "", fmt.Errorf("hostapp: cannot derive version from MAYA_LOCATION %q", loc)
	}
	return base[i:], nil
}
