// Package hostapp identifies which host application has embedded the
// running process. Detection is driven by a fixed, ordered registry of
// application descriptors and a resolver that tries an explicit override,
// the executable's name, and finally each descriptor's probe.
package hostapp

import "strings"

// Descriptor is one registry entry for a detectable host application.
// Descriptors are immutable after registration.
type Descriptor struct {
	// ID is the unique lowercase snake_case identifier for the
	// application. It is stable across versions and is the key used for
	// lookups and overrides.
	ID string

	// Name overrides the derived display name. Leave empty to derive it
	// from ID; set it when the brand casing differs (e.g. "FreeCAD").
	Name string

	// Probe reports whether this application's runtime environment is
	// present. Required even when ExecutableAliases is set, as the
	// fallback when the executable name is inconclusive.
	Probe Probe

	// ExecutableAliases are lowercase executable basenames (extension
	// stripped) that identify this application without running Probe.
	ExecutableAliases []string
}

// DisplayName returns the human-readable application name. When no explicit
// Name is set it is derived from ID: underscores become spaces and each word
// gets its first letter upper-cased with the remainder lower-cased.
func (d *Descriptor) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	words := strings.Split(strings.ReplaceAll(d.ID, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// matchesExecutable reports whether base (a lowercase, extension-stripped
// executable basename) is one of this application's known aliases.
func (d *Descriptor) matchesExecutable(base string) bool {
	for _, a := range d.ExecutableAliases {
		if a == base {
			return true
		}
	}
	return false
}
