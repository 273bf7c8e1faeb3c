package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ironsheep/edgedraw/internal/canny"
	"github.com/ironsheep/edgedraw/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_edge_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// Requesting the color method therefore surfaces as -32000 with the
// unsupported-mode message in data.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)
	case "image_gradient":
		return s.handleImageGradient(args)
	case "image_edge_overlay":
		return s.handleImageEdgeOverlay(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Edge Detection Handlers ===

// methodArg accepts the method flag either as its numeric value (0, 1) or by
// name ("grayscale", "color").
type methodArg struct {
	set    bool
	method canny.Method
}

func (m *methodArg) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("method must be a name or an integer: %s", data)
		}
		name = strconv.Itoa(n)
	}

	method, err := canny.ParseMethod(name)
	if err != nil {
		return err
	}
	m.set = true
	m.method = method
	return nil
}

// edgeArgs are shared by every edge tool. Unset fields fall back to the
// server defaults.
type edgeArgs struct {
	Path       string          `json:"path"`
	Method     methodArg       `json:"method"`
	Operator   *string         `json:"operator"`
	BlurRadius *float64        `json:"blur_radius"`
	Workers    *int            `json:"workers"`
	Region     *imaging.Region `json:"region"`
}

// options merges the call arguments over the server defaults.
func (s *Server) options(a edgeArgs) (imaging.EdgeOptions, error) {
	opts := s.defaults
	opts.Region = a.Region

	if a.Method.set {
		opts.Method = a.Method.method
	}
	if a.Operator != nil {
		op, err := canny.ParseOperator(*a.Operator)
		if err != nil {
			return opts, err
		}
		opts.Operator = op
	}
	if a.BlurRadius != nil {
		opts.BlurRadius = *a.BlurRadius
	}
	if a.Workers != nil {
		opts.Workers = *a.Workers
	}
	return opts, nil
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a edgeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := s.options(a)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	return imaging.EdgeDetect(img, opts)
}

func (s *Server) handleImageGradient(args json.RawMessage) (interface{}, error) {
	var a edgeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := s.options(a)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	return imaging.GradientImage(img, opts)
}

type imageEdgeOverlayArgs struct {
	edgeArgs
	Color   string   `json:"color"`
	Opacity *float64 `json:"opacity"`
}

func (s *Server) handleImageEdgeOverlay(args json.RawMessage) (interface{}, error) {
	var a imageEdgeOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := s.options(a.edgeArgs)
	if err != nil {
		return nil, err
	}

	opacity := 1.0
	if a.Opacity != nil {
		opacity = *a.Opacity
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	return imaging.EdgeOverlay(img, opts, a.Color, opacity)
}
