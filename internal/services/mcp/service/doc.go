// Package service wires protocol transport to the decision tools.
//
// It is the transport adapter layer: the package knows how to run MCP over
// stdio or streamable HTTP and delegates tool behavior to the domain package.
package service
