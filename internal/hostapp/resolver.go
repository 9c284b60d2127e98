package hostapp

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOverrideKey is the environment variable consulted for a forced
// application id when no explicit override option is supplied.
const DefaultOverrideKey = "HOSTPROBE_APP"

// Strategy identifies which resolution strategy produced a match.
type Strategy int

const (
	// StrategyNone means no strategy matched.
	StrategyNone Strategy = iota
	// StrategyOverride means an externally supplied id forced the match.
	StrategyOverride
	// StrategyExecutable means the executable basename matched an alias.
	StrategyExecutable
	// StrategyProbe means a descriptor's probe reported true.
	StrategyProbe
)

func (s Strategy) String() string {
	switch s {
	case StrategyOverride:
		return "override"
	case StrategyExecutable:
		return "executable"
	case StrategyProbe:
		return "probe"
	default:
		return "none"
	}
}

// Result is the outcome of one resolution pass.
type Result struct {
	// Descriptor is the matched application, or nil when none matched.
	Descriptor *Descriptor
	// Strategy records how the match was made (StrategyNone on no match).
	Strategy Strategy
}

// Resolver determines the active host application. It is stateless between
// calls; Resolve and Detect are idempotent and safe to call repeatedly.
type Resolver struct {
	reg         *Registry
	log         *slog.Logger
	override    string
	overrideSet bool
	overrideKey string
	lookupEnv   func(string) (string, bool)
	executable  func() (string, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithOverride forces the override strategy to the given id, bypassing the
// override environment variable. An empty id disables the override.
func WithOverride(id string) Option {
	return func(r *Resolver) {
		r.override = id
		r.overrideSet = true
	}
}

// WithOverrideKey changes the environment variable consulted for an
// override id.
func WithOverrideKey(key string) Option {
	return func(r *Resolver) { r.overrideKey = key }
}

// WithLookupEnv replaces the environment lookup used for the override
// strategy.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(r *Resolver) { r.lookupEnv = fn }
}

// WithExecutablePath replaces the running executable path used by the
// executable-name strategy.
func WithExecutablePath(path string) Option {
	return func(r *Resolver) {
		r.executable = func() (string, error) { return path, nil }
	}
}

// WithLogger sets the logger for resolution diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// NewResolver creates a Resolver over the given registry.
func NewResolver(reg *Registry, opts ...Option) *Resolver {
	r := &Resolver{
		reg:         reg,
		log:         slog.Default(),
		overrideKey: DefaultOverrideKey,
		lookupEnv:   os.LookupEnv,
		executable:  os.Executable,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Detect returns the descriptor of the detected host application, or nil
// when no application matched. Absence is not an error.
func (r *Resolver) Detect() *Descriptor {
	return r.Resolve().Descriptor
}

// Resolve runs the detection strategies in priority order: explicit
// override, executable name, probe sweep.
func (r *Resolver) Resolve() Result {
	if override, ok := r.overrideValue(); ok {
		if d, found := r.reg.GetByID(override); found {
			r.log.Debug("host application forced by override", "id", d.ID)
			return Result{Descriptor: d, Strategy: StrategyOverride}
		}
		// A bad override never falls through: detecting some other host
		// after a typo is worse for pipeline code than detecting none.
		r.log.Warn("override names an unknown application", "override", override)
		return Result{}
	}

	if base := r.executableBase(); base != "" {
		for _, d := range r.reg.All() {
			if d.matchesExecutable(base) {
				r.log.Debug("host application detected from executable name",
					"id", d.ID, "executable", base)
				return Result{Descriptor: d, Strategy: StrategyExecutable}
			}
		}
	}

	for _, d := range r.reg.All() {
		if RunProbe(d.Probe) {
			r.log.Debug("host application detected by probe", "id", d.ID)
			return Result{Descriptor: d, Strategy: StrategyProbe}
		}
	}

	return Result{}
}

func (r *Resolver) overrideValue() (string, bool) {
	if r.overrideSet {
		return r.override, r.override != ""
	}
	v, ok := r.lookupEnv(r.overrideKey)
	return v, ok && v != ""
}

// executableBase returns the lowercase basename of the running executable
// with its extension stripped, or "" when it cannot be determined.
func (r *Resolver) executableBase() string {
	path, err := r.executable()
	if err != nil || path == "" {
		return ""
	}
	base := strings.ToLower(filepath.Base(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
