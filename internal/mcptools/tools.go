package mcptools

import "github.com/pipefold/hostprobe/internal/export"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// DetectHostInput is the input for the detect_host MCP tool.
type DetectHostInput struct {
	Override string `json:"override,omitempty" jsonschema:"application id to force instead of probing. An unknown id yields detected=false"`
}

// DetectHostOutput is the result of the detect_host MCP tool.
type DetectHostOutput struct {
	Detected    bool   `json:"detected"`
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Strategy    string `json:"strategy"`
}

// ListHostsInput is the input for the list_hosts MCP tool.
type ListHostsInput struct{}

// ListHostsOutput is the result of the list_hosts MCP tool.
type ListHostsOutput struct {
	Applications []export.ApplicationExport `json:"applications"`
	Total        int                        `json:"total"`
}

// ProbeHostInput is the input for the probe_host MCP tool.
type ProbeHostInput struct {
	ID string `json:"id" jsonschema:"application id whose probe should be evaluated"`
}

// ProbeHostOutput is the result of the probe_host MCP tool.
type ProbeHostOutput struct {
	ID      string `json:"id"`
	Matched bool   `json:"matched"`
}

// HostVersionInput is the input for the host_version MCP tool.
type HostVersionInput struct {
	ID string `json:"id" jsonschema:"application id whose version should be looked up"`
}

// HostVersionOutput is the result of the host_version MCP tool.
type HostVersionOutput struct {
	ID        string `json:"id"`
	Supported bool   `json:"supported"`
	Version   string `json:"version,omitempty"`
}
