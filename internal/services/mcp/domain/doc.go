// Package domain maps MCP tool calls onto the decision content tables and the
// decision quality scorer.
//
// Handlers are read-only: they look records up by ID, score choices and shape
// structured outputs that MCP clients can render.
package domain
