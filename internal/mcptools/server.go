package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewHostProbeMCPServer creates an MCP server with the 4 detection tools
// registered: detect_host, list_hosts, probe_host, and host_version.
func NewHostProbeMCPServer(svc *DetectService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "hostprobe",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_host",
		Description: "Detect which host application embeds the current process. Tries an explicit override, then the executable name, then each application's environment probe in registry order.",
	}, svc.DetectHost)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_hosts",
		Description: "List every application in the detection catalog with its id, display name, and known executable aliases.",
	}, svc.ListHosts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "probe_host",
		Description: "Evaluate a single application's environment probe by id. Reports whether that host's environment markers are present.",
	}, svc.ProbeHost)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "host_version",
		Description: "Look up a host application's version by id. Most hosts have no version provider; the result reports whether one exists.",
	}, svc.HostVersion)

	return server
}

// RunMCPServerStdio runs the MCP server on stdio transport, blocking until
// stdin is closed or the context is cancelled.
func RunMCPServerStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// RunMCPServerHTTP starts an HTTP server exposing the detection MCP tools.
func RunMCPServerHTTP(ctx context.Context, svc *DetectService, addr string) error {
	server := NewHostProbeMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
