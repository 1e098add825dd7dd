// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/brandscope/brandscope/internal/contract"
)

// NewMCPServer initializes and configures the Brandscope MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Brandscope Metrics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_brand_report ---
	s.AddTool(mcp.NewTool("get_brand_report",
		mcp.WithDescription("Build a ranked brand visibility report, optionally narrowed by topic, persona, platform and competitor selection."),
		mcp.WithString("topics", mcp.Description("Comma-separated topic filter (e.g. 'pricing,support').")),
		mcp.WithString("personas", mcp.Description("Comma-separated persona filter.")),
		mcp.WithString("platforms", mcp.Description("Comma-separated platform filter.")),
		mcp.WithString("brands", mcp.Description("Comma-separated competitor selection. Defaults to the stored selection.")),
		mcp.WithString("sort", mcp.Description("Metric to sort by. Defaults to 'visibilityScore'."), mcp.Enum("visibilityScore", "shareOfVoice", "avgPosition", "depthOfMention", "citationShare", "sentimentScore", "totalMentions")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of brands returned.")),
	), h.handleGetBrandReport)

	// --- 2. Tool: get_position_breakdown ---
	s.AddTool(mcp.NewTool("get_position_breakdown",
		mcp.WithDescription("Return per-brand first/second/third/other position percentages for the configured view."),
		mcp.WithString("topics", mcp.Description("Comma-separated topic filter.")),
		mcp.WithString("personas", mcp.Description("Comma-separated persona filter.")),
		mcp.WithString("platforms", mcp.Description("Comma-separated platform filter.")),
		mcp.WithString("brands", mcp.Description("Comma-separated competitor selection.")),
	), h.handleGetPositionBreakdown)

	// --- 3. Tool: get_sentiment_breakdown ---
	s.AddTool(mcp.NewTool("get_sentiment_breakdown",
		mcp.WithDescription("Return per-brand positive/neutral/negative/mixed sentiment percentages for the configured view."),
		mcp.WithString("topics", mcp.Description("Comma-separated topic filter.")),
		mcp.WithString("personas", mcp.Description("Comma-separated persona filter.")),
		mcp.WithString("platforms", mcp.Description("Comma-separated platform filter.")),
		mcp.WithString("brands", mcp.Description("Comma-separated competitor selection.")),
	), h.handleGetSentimentBreakdown)

	// --- 4. Tool: list_scopes ---
	s.AddTool(mcp.NewTool("list_scopes",
		mcp.WithDescription("List the stored metric scopes with brand counts and calculation timestamps."),
	), h.handleListScopes)

	return s
}

// StartMCPServer starts the Brandscope MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
