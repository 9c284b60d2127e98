// Package export renders the registry catalog and detection results in
// stable JSON shapes for machine consumers.
package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/pipefold/hostprobe/internal/hostapp"
)

// ApplicationExport describes one catalog entry.
type ApplicationExport struct {
	ID                 string   `json:"id"`
	DisplayName        string   `json:"displayName"`
	ExecutableAliases  []string `json:"executableAliases,omitempty"`
	HasVersionProvider bool     `json:"hasVersionProvider"`
}

// CatalogExport is the top-level JSON export of the registry.
type CatalogExport struct {
	GeneratedAt  string              `json:"generatedAt"`
	Applications []ApplicationExport `json:"applications"`
}

// DetectionExport is the JSON shape of one resolution result.
type DetectionExport struct {
	Detected    bool   `json:"detected"`
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Strategy    string `json:"strategy"`
}

// Catalog builds a CatalogExport from the registry in registration order.
func Catalog(reg *hostapp.Registry, providers map[string]hostapp.VersionFunc) *CatalogExport {
	out := &CatalogExport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, d := range reg.All() {
		_, hasProvider := providers[d.ID]
		out.Applications = append(out.Applications, ApplicationExport{
			ID:                 d.ID,
			DisplayName:        d.DisplayName(),
			ExecutableAliases:  d.ExecutableAliases,
			HasVersionProvider: hasProvider,
		})
	}
	return out
}

// Detection builds a DetectionExport from a resolution result.
func Detection(res hostapp.Result) DetectionExport {
	out := DetectionExport{Strategy: res.Strategy.String()}
	if res.Descriptor != nil {
		out.Detected = true
		out.ID = res.Descriptor.ID
		out.DisplayName = res.Descriptor.DisplayName()
	}
	return out
}

// WriteJSON writes v to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
