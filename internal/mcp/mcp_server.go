// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the hubstats MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Hubstats Usage Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_module_stats ---
	s.AddTool(mcp.NewTool("get_module_stats",
		mcp.WithDescription("Return per-module usage metrics: visits, active engagements, dwell time, usage rate and satisfaction score."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of modules returned, highest visits first.")),
	), h.handleGetModuleStats)

	// --- 2. Tool: get_login_stats ---
	s.AddTool(mcp.NewTool("get_login_stats",
		mcp.WithDescription("Return the login record: total deduplicated logins, last login time and per-unit coverage."),
	), h.handleGetLoginStats)

	// --- 3. Tool: get_usage_trend ---
	s.AddTool(mcp.NewTool("get_usage_trend",
		mcp.WithDescription("Return the trailing daily trend of visits, active engagements and average dwell across all modules."),
		mcp.WithString("timeframe", mcp.Description("Reporting window (7d, 30d, 90d). Defaults to 7d."), mcp.Enum("7d", "30d", "90d")),
	), h.handleGetUsageTrend)

	// --- 4. Tool: get_hourly_distribution ---
	s.AddTool(mcp.NewTool("get_hourly_distribution",
		mcp.WithDescription("Return visit totals folded into named day parts (overnight, morning, peaks, evening)."),
	), h.handleGetHourlyDistribution)

	// --- 5. Tool: get_unit_coverage ---
	s.AddTool(mcp.NewTool("get_unit_coverage",
		mcp.WithDescription("Return login coverage per organizational unit: distinct operators, logins and share of the active user base."),
	), h.handleGetUnitCoverage)

	return s
}

// StartMCPServer starts the hubstats MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
