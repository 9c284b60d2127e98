// Package mcptools exposes host application detection to MCP clients so
// agent and pipeline tooling can branch per host without linking this
// module.
package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pipefold/hostprobe/internal/export"
	"github.com/pipefold/hostprobe/internal/hostapp"
)

// DetectService holds the registry, resolver options, and version providers
// used by the MCP tool handlers.
type DetectService struct {
	reg       *hostapp.Registry
	opts      []hostapp.Option
	providers map[string]hostapp.VersionFunc
}

// NewDetectService creates a DetectService. opts are applied to every
// resolver the service builds; per-call overrides are appended after them.
func NewDetectService(reg *hostapp.Registry, providers map[string]hostapp.VersionFunc, opts ...hostapp.Option) *DetectService {
	return &DetectService{reg: reg, opts: opts, providers: providers}
}

// DetectHost runs the resolver and reports the detected host application.
func (s *DetectService) DetectHost(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DetectHostInput,
) (*mcp.CallToolResult, DetectHostOutput, error) {
	opts := s.opts
	if input.Override != "" {
		opts = append(append([]hostapp.Option{}, s.opts...), hostapp.WithOverride(input.Override))
	}

	res := hostapp.NewResolver(s.reg, opts...).Resolve()
	d := export.Detection(res)

	return nil, DetectHostOutput{
		Detected:    d.Detected,
		ID:          d.ID,
		DisplayName: d.DisplayName,
		Strategy:    d.Strategy,
	}, nil
}

// ListHosts returns the full application catalog in registration order.
func (s *DetectService) ListHosts(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListHostsInput,
) (*mcp.CallToolResult, ListHostsOutput, error) {
	catalog := export.Catalog(s.reg, s.providers)
	return nil, ListHostsOutput{
		Applications: catalog.Applications,
		Total:        len(catalog.Applications),
	}, nil
}

// ProbeHost evaluates a single application's probe by id.
func (s *DetectService) ProbeHost(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ProbeHostInput,
) (*mcp.CallToolResult, ProbeHostOutput, error) {
	if input.ID == "" {
		return nil, ProbeHostOutput{}, fmt.Errorf("id is required")
	}
	d, ok := s.reg.GetByID(input.ID)
	if !ok {
		return nil, ProbeHostOutput{}, fmt.Errorf("unknown application id %q", input.ID)
	}
	return nil, ProbeHostOutput{
		ID:      d.ID,
		Matched: hostapp.RunProbe(d.Probe),
	}, nil
}

// HostVersion looks up an application's version when a provider exists.
func (s *DetectService) HostVersion(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input HostVersionInput,
) (*mcp.CallToolResult, HostVersionOutput, error) {
	if input.ID == "" {
		return nil, HostVersionOutput{}, fmt.Errorf("id is required")
	}
	if _, ok := s.reg.GetByID(input.ID); !ok {
		return nil, HostVersionOutput{}, fmt.Errorf("unknown application id %q", input.ID)
	}

	v, supported, err := hostapp.LookupVersion(s.providers, input.ID)
	if err != nil {
		return nil, HostVersionOutput{}, fmt.Errorf("version lookup for %q: %w", input.ID, err)
	}
	return nil, HostVersionOutput{
		ID:        input.ID,
		Supported: supported,
		Version:   v,
	}, nil
}
