package main

import (
	"github.com/spf13/cobra"

	"github.com/pipefold/hostprobe/internal/hostapp"
	"github.com/pipefold/hostprobe/internal/mcptools"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the detection tools over MCP",
	Long: `Run an MCP server exposing detect_host, list_hosts, probe_host, and
host_version, so agent tooling can query host detection without linking
this module. Serves on stdio by default; pass --http to serve over HTTP.`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "",
		"serve over HTTP on this address instead of stdio (e.g. 127.0.0.1:8765)")
}

func runMCP(cmd *cobra.Command, _ []string) error {
	reg, override, err := buildRegistry()
	if err != nil {
		return err
	}

	opts := []hostapp.Option{}
	if override != "" {
		opts = append(opts, hostapp.WithOverride(override))
	}
	svc := mcptools.NewDetectService(reg, hostapp.DefaultVersionProviders(), opts...)

	if mcpHTTPAddr != "" {
		return mcptools.RunMCPServerHTTP(cmd.Context(), svc, mcpHTTPAddr)
	}
	return mcptools.RunMCPServerStdio(cmd.Context(), mcptools.NewHostProbeMCPServer(svc))
}
