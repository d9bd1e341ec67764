/*
Package observability provides tools for monitoring the aegraph engine.

Metrics are collected from the engine's lifecycle hooks, so any host (CLI,
HTTP server, MCP server) gets the same counters by registering Metrics.Hooks.
*/
package observability
