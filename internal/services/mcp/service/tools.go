package service

import (
	"fmt"

	"github.com/decisionroom/decisionroom/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.EvaluateInput, domain.EvaluateResult](),
	newMCPToolRegistrar[domain.CaseListInput, domain.CaseListResult](),
	newMCPToolRegistrar[domain.CaseGetInput, domain.CaseResult](),
	newMCPToolRegistrar[domain.ScenarioListInput, domain.ScenarioListResult](),
	newMCPToolRegistrar[domain.ScenarioAnswerInput, domain.ScenarioAnswerResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func registerDecisionTools(registrar mcpRegistrationTarget, tables Tables) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.EvaluateTool(), handler: domain.EvaluateHandler()},
		{tool: domain.CaseListTool(), handler: domain.CaseListHandler(tables.Cases)},
		{tool: domain.CaseGetTool(), handler: domain.CaseGetHandler(tables.Cases)},
		{tool: domain.ScenarioListTool(), handler: domain.ScenarioListHandler(tables.Scenarios)},
		{tool: domain.ScenarioAnswerTool(), handler: domain.ScenarioAnswerHandler(tables.Scenarios)},
	}
	for _, registration := range registrations {
		if err := registrar.AddTool(registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}
