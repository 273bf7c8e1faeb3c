package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool's image path argument.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// edgeProperties returns the schema properties shared by the edge tools.
func edgeProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"method": map[string]interface{}{
			"type":        []string{"string", "integer"},
			"description": "Grayscale-derivation policy: 0 or \"grayscale\" (default), 1 or \"color\" (not implemented, always fails)",
		},
		"operator": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"sobel", "scharr"},
			"description": "Derivative kernels (default: sobel)",
		},
		"blur_radius": map[string]interface{}{
			"type":        "number",
			"description": "Gaussian pre-blur radius in pixels, 0 disables (default: server setting)",
		},
		"workers": map[string]interface{}{
			"type":        "integer",
			"description": "Concurrent row bands, 0 uses all CPUs. Output does not depend on it.",
		},
		"region": map[string]interface{}{
			"type":        "object",
			"description": "Optional sub-rectangle to analyze",
			"properties": map[string]interface{}{
				"x1": map[string]interface{}{"type": "integer"},
				"y1": map[string]interface{}{"type": "integer"},
				"x2": map[string]interface{}{"type": "integer"},
				"y2": map[string]interface{}{"type": "integer"},
			},
			"required": []string{"x1", "y1", "x2", "y2"},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	overlayProps := edgeProperties()
	overlayProps["color"] = map[string]interface{}{
		"type":        "string",
		"description": "Edge color as #RGB or #RRGGBB (default: #FF0000)",
	}
	overlayProps["opacity"] = map[string]interface{}{
		"type":        "number",
		"minimum":     0,
		"maximum":     1,
		"description": "Edge layer opacity (default: 1)",
	}

	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent edge operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_edge_detect",
			Description: "Canny edge detection with thresholds derived from the image itself. Returns a binary edge map (255 edge, 0 background) as base64 PNG plus the edge pixel count.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": edgeProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_gradient",
			Description: "Render the 8-bit gradient magnitude that edge detection starts from, as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": edgeProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_edge_overlay",
			Description: "Detect edges and paint them over the source image in a chosen color. Returns the composite as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": overlayProps,
				"required":   []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
