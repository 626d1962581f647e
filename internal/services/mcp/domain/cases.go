package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/decisionroom/decisionroom/internal/content"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CaseSource is the read-only case table.
type CaseSource interface {
	All() []content.Case
	Find(id string) (content.Case, bool)
}

// CaseListInput represents the MCP tool input for listing cases.
type CaseListInput struct{}

// CaseSummary is one case in the list output.
type CaseSummary struct {
	ID       string `json:"id" jsonschema:"case identifier"`
	Category string `json:"category" jsonschema:"case category"`
	Title    string `json:"title" jsonschema:"case question"`
}

// CaseListResult represents the MCP tool output for listing cases.
type CaseListResult struct {
	Cases []CaseSummary `json:"cases" jsonschema:"cases in display order"`
}

// CaseGetInput represents the MCP tool input for reading one case.
type CaseGetInput struct {
	ID     string `json:"id" jsonschema:"case identifier such as 01"`
	Reveal bool   `json:"reveal,omitempty" jsonschema:"include the decision and rationale"`
}

// CaseResult represents one case. Decision fields are set only when revealed.
type CaseResult struct {
	ID        string   `json:"id" jsonschema:"case identifier"`
	Category  string   `json:"category" jsonschema:"case category"`
	Title     string   `json:"title" jsonschema:"case question"`
	Context   string   `json:"context" jsonschema:"business context"`
	Signals   []string `json:"signals" jsonschema:"signals available when deciding"`
	Revealed  bool     `json:"revealed" jsonschema:"whether the decision is included"`
	Verdict   string   `json:"verdict,omitempty" jsonschema:"decision verdict"`
	Label     string   `json:"label,omitempty" jsonschema:"decision label shown next to the verdict"`
	Rationale []string `json:"rationale,omitempty" jsonschema:"ordered rationale bullets"`
}

// CaseListTool defines the MCP tool schema for listing cases.
func CaseListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "decision_cases_list",
		Description: "Lists the decision cases",
	}
}

// CaseGetTool defines the MCP tool schema for reading a case.
func CaseGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "decision_case_get",
		Description: "Returns one decision case, optionally with its decision revealed",
	}
}

// CaseListHandler lists cases in authored order.
func CaseListHandler(source CaseSource) mcp.ToolHandlerFor[CaseListInput, CaseListResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ CaseListInput) (*mcp.CallToolResult, CaseListResult, error) {
		records := source.All()
		result := CaseListResult{Cases: make([]CaseSummary, 0, len(records))}
		for _, record := range records {
			result.Cases = append(result.Cases, CaseSummary{
				ID:       record.ID,
				Category: record.Category,
				Title:    record.Title,
			})
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// CaseGetHandler reads a case by ID.
func CaseGetHandler(source CaseSource) mcp.ToolHandlerFor[CaseGetInput, CaseResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CaseGetInput) (*mcp.CallToolResult, CaseResult, error) {
		id := strings.TrimSpace(input.ID)
		if id == "" {
			return nil, CaseResult{}, fmt.Errorf("case id is required")
		}
		record, ok := source.Find(id)
		if !ok {
			return nil, CaseResult{}, fmt.Errorf("case %q not found", id)
		}
		return &mcp.CallToolResult{}, caseResult(record, input.Reveal), nil
	}
}

func caseResult(record content.Case, reveal bool) CaseResult {
	result := CaseResult{
		ID:       record.ID,
		Category: record.Category,
		Title:    record.Title,
		Context:  record.Context,
		Signals:  record.Signals,
		Revealed: reveal,
	}
	if reveal {
		result.Verdict = record.Outcome.Verdict.String()
		result.Label = record.Outcome.Label()
		result.Rationale = record.Rationale
	}
	return result
}
