package hostapp

import (
	"os"
	"os/exec"
)

// Probe reports whether a host application's runtime environment is present.
// Probes must be cheap and side-effect free; a probe that fails for any
// reason simply reports false.
type Probe func() bool

// EnvSet returns a probe that is true when any of the named environment
// variables is set to a non-empty value.
func EnvSet(keys ...string) Probe {
	return func() bool {
		for _, k := range keys {
			if v, ok := os.LookupEnv(k); ok && v != "" {
				return true
			}
		}
		return false
	}
}

// FileExists returns a probe that is true when any of the given paths exists.
func FileExists(paths ...string) Probe {
	return func() bool {
		for _, p := range paths {
			if _, err := os.Stat(p); err == nil {
				return true
			}
		}
		return false
	}
}

// CommandOnPath returns a probe that is true when any of the named
// executables resolves on PATH.
func CommandOnPath(names ...string) Probe {
	return func() bool {
		for _, n := range names {
			if _, err := exec.LookPath(n); err == nil {
				return true
			}
		}
		return false
	}
}

// AnyOf returns a probe that is true when at least one of the given probes
// is true. Evaluation stops at the first match.
func AnyOf(probes ...Probe) Probe {
	return func() bool {
		for _, p := range probes {
			if RunProbe(p) {
				return true
			}
		}
		return false
	}
}

// AllOf returns a probe that is true only when every given probe is true.
func AllOf(probes ...Probe) Probe {
	return func() bool {
		for _, p := range probes {
			if !RunProbe(p) {
				return false
			}
		}
		return len(probes) > 0
	}
}

// Never returns a probe that is always false. Placeholder for hosts with no
// reliable environment marker.
func Never() Probe {
	return func() bool { return false }
}

// RunProbe invokes a probe, absorbing panics. A probe that panics means
// "not this application", never a fatal condition.
func RunProbe(p Probe) (ok bool) {
	if p == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return p()
}
