package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Eysn0130/EconX-AI-Hub2/core"
	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleGetModuleStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := core.ModuleStatsSnapshot(h.mgr)
	rows := core.ModuleRows(stats)

	if limit := request.GetInt("limit", 0); limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetLoginStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report := core.BuildLoginReport(h.mgr, time.Now())

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetUsageTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timeframe := h.baseCfg.Timeframe
	if tf := request.GetString("timeframe", ""); tf != "" {
		timeframe = schema.Timeframe(tf)
	}

	stats := core.ModuleStatsSnapshot(h.mgr)
	points := core.TrendSeries(stats, schema.TimeframeDays(timeframe), time.Now())

	jsonData, _ := json.MarshalIndent(points, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetHourlyDistribution(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := core.ModuleStatsSnapshot(h.mgr)
	segments := core.SegmentTotals(core.HourlyTotals(stats))

	jsonData, _ := json.MarshalIndent(segments, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetUnitCoverage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := core.LoginStatsSnapshot(h.mgr)
	rows := core.UnitCoverage(stats)

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
