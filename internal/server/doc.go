// Package server exposes the edge detector as an MCP (Model Context Protocol)
// tool server.
//
// The server speaks JSON-RPC 2.0 over stdio:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_edge_detect: Canny edge map
//   - image_gradient: Gradient magnitude before suppression
//   - image_edge_overlay: Edges painted over the source image
//
// The edge tools accept method, operator, blur_radius, workers and region.
// Arguments left out fall back to the Options.Defaults the server was built
// with, which normally come from the configuration file.
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process, so
// repeated edge calls on one file decode it once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Selecting the color method is such a failure: it never yields an empty
// edge map.
package server
