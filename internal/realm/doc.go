// Package realm implements the connected-realm status pipeline: resolving
// the cluster index for a region, fetching each cluster's detail under a
// fixed request-rate throttle, flattening clusters into per-realm rows, and
// sorting those rows by display column.
//
// The package performs no rendering. Callers (TUI panels, the status
// command, the MCP server) run the pipeline and present the resulting rows
// however they like.
package realm
