package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/decisionroom/decisionroom/internal/content"
	"github.com/decisionroom/decisionroom/internal/decision"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ScenarioSource is the read-only scenario table.
type ScenarioSource interface {
	All() []content.Scenario
	Find(id string) (content.Scenario, bool)
}

// ScenarioListInput represents the MCP tool input for listing scenarios.
type ScenarioListInput struct{}

// ScenarioSummary is one simulator scenario without its preferred call.
type ScenarioSummary struct {
	Index    int      `json:"index" jsonschema:"zero-based position in the simulator"`
	ID       string   `json:"id" jsonschema:"scenario identifier"`
	Category string   `json:"category" jsonschema:"scenario category"`
	Title    string   `json:"title" jsonschema:"scenario question"`
	Context  string   `json:"context" jsonschema:"business context"`
	Signals  []string `json:"signals" jsonschema:"signals available when deciding"`
}

// ScenarioListResult represents the MCP tool output for listing scenarios.
type ScenarioListResult struct {
	Scenarios []ScenarioSummary `json:"scenarios" jsonschema:"scenarios in play order"`
}

// ScenarioAnswerInput represents the MCP tool input for answering a scenario.
type ScenarioAnswerInput struct {
	ScenarioID string `json:"scenario_id" jsonschema:"scenario identifier"`
	Choice     string `json:"choice" jsonschema:"the answer: ACT, WAIT or KILL"`
	Recruiter  bool   `json:"recruiter,omitempty" jsonschema:"also return the preferred call and its justification"`
}

// ScenarioAnswerResult represents the MCP tool output for an answered scenario.
type ScenarioAnswerResult struct {
	ScenarioID    string `json:"scenario_id" jsonschema:"scenario identifier"`
	Choice        string `json:"choice" jsonschema:"normalized answer"`
	Score         int    `json:"score" jsonschema:"decision quality score out of 100"`
	Tier          string `json:"tier" jsonschema:"alignment tier"`
	Feedback      string `json:"feedback" jsonschema:"canned feedback for the tier"`
	Reasoning     string `json:"reasoning" jsonschema:"executive reasoning for the chosen answer"`
	Preferred     string `json:"preferred,omitempty" jsonschema:"preferred call, recruiter mode only"`
	Justification string `json:"justification,omitempty" jsonschema:"first-person justification, recruiter mode only"`
}

// ScenarioListTool defines the MCP tool schema for listing scenarios.
func ScenarioListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "decision_scenarios_list",
		Description: "Lists the decision simulator scenarios",
	}
}

// ScenarioAnswerTool defines the MCP tool schema for answering a scenario.
func ScenarioAnswerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "decision_scenario_answer",
		Description: "Answers a simulator scenario and returns its score, feedback and reasoning",
	}
}

// ScenarioListHandler lists scenarios in play order.
func ScenarioListHandler(source ScenarioSource) mcp.ToolHandlerFor[ScenarioListInput, ScenarioListResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ScenarioListInput) (*mcp.CallToolResult, ScenarioListResult, error) {
		records := source.All()
		result := ScenarioListResult{Scenarios: make([]ScenarioSummary, 0, len(records))}
		for i, record := range records {
			result.Scenarios = append(result.Scenarios, ScenarioSummary{
				Index:    i,
				ID:       record.ID,
				Category: record.Category,
				Title:    record.Title,
				Context:  record.Context,
				Signals:  record.Signals,
			})
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// ScenarioAnswerHandler scores an answer against the scenario's preferred call.
func ScenarioAnswerHandler(source ScenarioSource) mcp.ToolHandlerFor[ScenarioAnswerInput, ScenarioAnswerResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ScenarioAnswerInput) (*mcp.CallToolResult, ScenarioAnswerResult, error) {
		id := strings.TrimSpace(input.ScenarioID)
		if id == "" {
			return nil, ScenarioAnswerResult{}, fmt.Errorf("scenario id is required")
		}
		scenario, ok := source.Find(id)
		if !ok {
			return nil, ScenarioAnswerResult{}, fmt.Errorf("scenario %q not found", id)
		}
		choice, err := decision.ParseChoice(input.Choice)
		if err != nil {
			return nil, ScenarioAnswerResult{}, fmt.Errorf("invalid choice: %w", err)
		}
		scored := decision.Evaluate(choice, scenario.Preferred)
		result := ScenarioAnswerResult{
			ScenarioID: scenario.ID,
			Choice:     choice.String(),
			Score:      scored.Score,
			Tier:       string(scored.Tier),
			Feedback:   scored.Feedback,
			Reasoning:  scenario.ReasoningFor(choice),
		}
		if input.Recruiter {
			result.Preferred = scenario.Preferred.String()
			result.Justification = scenario.Justification
		}
		return &mcp.CallToolResult{}, result, nil
	}
}
