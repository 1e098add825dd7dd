package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/brandscope/brandscope/core"
	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// requestConfig derives a per-request config from the base config and the
// common filter arguments shared by every report-shaped tool.
func (h *toolHandler) requestConfig(ctx context.Context, request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if v := request.GetString("topics", ""); v != "" {
		cfg.Topics = contract.SplitCSVList(v)
	}
	if v := request.GetString("personas", ""); v != "" {
		cfg.Personas = contract.SplitCSVList(v)
	}
	if v := request.GetString("platforms", ""); v != "" {
		cfg.Platforms = contract.SplitCSVList(v)
	}
	if v := request.GetString("brands", ""); v != "" {
		cfg.Brands = contract.SplitCSVList(v)
	}

	if err := core.ApplyStoredSelection(ctx, cfg, h.mgr.GetMetricsStore()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (h *toolHandler) handleGetBrandReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("selection lookup failed: %v", err)), nil
	}
	if m := request.GetString("sort", ""); m != "" {
		cfg.SortBy = schema.MetricKey(m)
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	record, err := core.BuildReport(ctx, cfg, h.mgr.GetMetricsStore())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(record, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPositionBreakdown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.breakdownResult(ctx, request, func(b core.BrandBreakdown) any {
		return struct {
			BrandName string              `json:"brandName"`
			IsOwner   bool                `json:"isOwner"`
			Positions core.PositionShares `json:"positions"`
		}{b.BrandName, b.IsOwner, b.Positions}
	})
}

func (h *toolHandler) handleGetSentimentBreakdown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.breakdownResult(ctx, request, func(b core.BrandBreakdown) any {
		return struct {
			BrandName string               `json:"brandName"`
			IsOwner   bool                 `json:"isOwner"`
			Sentiment core.SentimentShares `json:"sentiment"`
		}{b.BrandName, b.IsOwner, b.Sentiment}
	})
}

// breakdownResult runs a report and projects each brand's breakdown
// through the given view function.
func (h *toolHandler) breakdownResult(ctx context.Context, request mcp.CallToolRequest, view func(core.BrandBreakdown) any) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("selection lookup failed: %v", err)), nil
	}

	record, err := core.BuildReport(ctx, cfg, h.mgr.GetMetricsStore())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}

	breakdowns := core.BuildBreakdowns(record)
	projected := make([]any, len(breakdowns))
	for i, b := range breakdowns {
		projected[i] = view(b)
	}

	jsonData, _ := json.MarshalIndent(projected, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListScopes(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos, err := h.mgr.GetMetricsStore().ListScopes(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scope listing failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(infos, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
