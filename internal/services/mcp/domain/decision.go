package domain

import (
	"context"
	"fmt"

	"github.com/decisionroom/decisionroom/internal/decision"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EvaluateInput represents the MCP tool input for scoring a choice.
type EvaluateInput struct {
	Choice    string `json:"choice" jsonschema:"the choice to score: ACT, WAIT or KILL"`
	Preferred string `json:"preferred" jsonschema:"the preferred choice to score against: ACT, WAIT or KILL"`
}

// EvaluateResult represents the MCP tool output for a scored choice.
type EvaluateResult struct {
	Choice    string `json:"choice" jsonschema:"normalized choice that was scored"`
	Preferred string `json:"preferred" jsonschema:"normalized preferred choice"`
	Score     int    `json:"score" jsonschema:"decision quality score out of 100"`
	Tier      string `json:"tier" jsonschema:"alignment tier"`
	Feedback  string `json:"feedback" jsonschema:"canned feedback for the tier"`
}

// EvaluateTool defines the MCP tool schema for the decision quality scorer.
func EvaluateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "decision_evaluate",
		Description: "Scores a decision choice against a preferred choice",
	}
}

// EvaluateHandler scores a choice with the decision quality scorer.
func EvaluateHandler() mcp.ToolHandlerFor[EvaluateInput, EvaluateResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input EvaluateInput) (*mcp.CallToolResult, EvaluateResult, error) {
		choice, err := decision.ParseChoice(input.Choice)
		if err != nil {
			return nil, EvaluateResult{}, fmt.Errorf("invalid choice: %w", err)
		}
		preferred, err := decision.ParseChoice(input.Preferred)
		if err != nil {
			return nil, EvaluateResult{}, fmt.Errorf("invalid preferred choice: %w", err)
		}
		return &mcp.CallToolResult{}, evaluateResult(choice, preferred), nil
	}
}

func evaluateResult(choice, preferred decision.Choice) EvaluateResult {
	scored := decision.Evaluate(choice, preferred)
	return EvaluateResult{
		Choice:    choice.String(),
		Preferred: preferred.String(),
		Score:     scored.Score,
		Tier:      string(scored.Tier),
		Feedback:  scored.Feedback,
	}
}
