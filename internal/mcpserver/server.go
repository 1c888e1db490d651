// Package mcpserver exposes realm status over the Model Context Protocol so
// AI assistants can query region state through stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"realmctl/internal/config"
	"realmctl/internal/realm"
)

// Server wraps an MCP stdio server with realmctl's configuration. Each tool
// call runs one full pipeline pass; nothing is cached between calls.
type Server struct {
	cfg       config.Config
	token     string
	mcpServer *server.MCPServer
}

// New assembles the MCP server and registers its tools.
func New(cfg config.Config, token, version string) *Server {
	s := &Server{
		cfg:   cfg,
		token: token,
		mcpServer: server.NewMCPServer(
			"realmctl",
			version,
			server.WithToolCapabilities(false),
		),
	}
	s.registerTools()
	return s
}

// Serve runs the stdio transport until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	listRegionsTool := mcp.NewTool("list_regions",
		mcp.WithDescription("List the configured game regions and their API endpoints"),
	)
	s.mcpServer.AddTool(listRegionsTool, s.handleListRegions)

	realmStatusTool := mcp.NewTool("realm_status",
		mcp.WithDescription("Fetch the current status of every realm in a region, one row per realm"),
		mcp.WithString("region",
			mcp.Required(),
			mcp.Description("Region name, e.g. \"us\" or \"eu\""),
		),
		mcp.WithString("sort_by",
			mcp.Description("Sort column: realm, type, status, or population"),
		),
		mcp.WithBoolean("descending",
			mcp.Description("Sort in descending order"),
		),
	)
	s.mcpServer.AddTool(realmStatusTool, s.handleRealmStatus)
}

func (s *Server) handleListRegions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type regionInfo struct {
		Name      string `json:"name"`
		APIURL    string `json:"apiUrl"`
		Namespace string `json:"namespace"`
		Locale    string `json:"locale"`
		Default   bool   `json:"default,omitempty"`
	}

	regions := make([]regionInfo, 0, len(s.cfg.Regions))
	for _, name := range s.cfg.RegionNames() {
		rc := s.cfg.Regions[name]
		regions = append(regions, regionInfo{
			Name:      name,
			APIURL:    rc.APIURL,
			Namespace: rc.Namespace,
			Locale:    rc.Locale,
			Default:   name == s.cfg.DefaultRegion,
		})
	}

	data, err := json.MarshalIndent(regions, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode regions: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleRealmStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region, err := request.RequireString("region")
	if err != nil {
		return mcp.NewToolResultError("region argument is required"), nil
	}
	rc, ok := s.cfg.Regions[region]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown region: %s", region)), nil
	}

	col := realm.ColumnNone
	args := request.GetArguments()
	if raw, ok := args["sort_by"].(string); ok && raw != "" {
		col, ok = realm.ParseColumn(raw)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown sort column: %v", raw)), nil
		}
	}
	dir := realm.Ascending
	if desc, ok := args["descending"].(bool); ok && desc {
		dir = realm.Descending
	}

	params := realm.Params{
		APIURL:    rc.APIURL,
		Namespace: rc.Namespace,
		Locale:    rc.Locale,
		Token:     s.token,
	}
	rows, skipped, err := realm.FetchRows(ctx, params, time.Duration(s.cfg.RequestInterval))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", region, err)), nil
	}

	result := struct {
		Region  string          `json:"region"`
		Skipped int             `json:"skippedClusters,omitempty"`
		Realms  []realm.RealmRow `json:"realms"`
	}{
		Region:  region,
		Skipped: skipped,
		Realms:  realm.SortRows(rows, col, dir),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode realm status: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
