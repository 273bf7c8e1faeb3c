package server

import (
	"bufio"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/edgedraw/internal/canny"
	"github.com/ironsheep/edgedraw/internal/imaging"
)

func TestNew(t *testing.T) {
	s := New(Options{})
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
	if s.version != "dev" {
		t.Errorf("version: got %q, want dev", s.version)
	}
}

func TestNew_KeepsDefaults(t *testing.T) {
	defaults := imaging.EdgeOptions{Operator: canny.OperatorScharr, BlurRadius: 1.5, Workers: 2}
	s := New(Options{Defaults: defaults, Version: "1.2.3"})

	if s.defaults != defaults {
		t.Errorf("defaults: got %+v, want %+v", s.defaults, defaults)
	}
	if s.version != "1.2.3" {
		t.Errorf("version: got %q, want 1.2.3", s.version)
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
		})
	}
}

func TestMCPResponse_WithError(t *testing.T) {
	resp := MCPResponse{
		JSONRPC: "2.0",
		ID:      1,
		Error: &MCPError{
			Code:    -32601,
			Message: "Method not found",
		},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	// result must be omitted when error is set
	if strings.Contains(string(data), `"result"`) {
		t.Errorf("error response contains result: %s", data)
	}
	if !strings.Contains(string(data), `"code":-32601`) {
		t.Errorf("error response missing code: %s", data)
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := New(Options{Version: "0.9.0"})
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}

	result := resp.Result.(map[string]interface{})
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}
	info := result["serverInfo"].(map[string]interface{})
	if info["name"] != "edgedraw" {
		t.Errorf("serverInfo.name: got %v, want edgedraw", info["name"])
	}
	if info["version"] != "0.9.0" {
		t.Errorf("serverInfo.version: got %v, want 0.9.0", info["version"])
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := New(Options{})
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: "p", Method: "ping"})

	if resp == nil || resp.Error != nil {
		t.Fatalf("ping failed: %+v", resp)
	}
	if resp.ID != "p" {
		t.Errorf("ID: got %v, want p", resp.ID)
	}
}

func TestHandleRequest_NotificationsInitialized(t *testing.T) {
	s := New(Options{})
	if resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"}); resp != nil {
		t.Errorf("notification produced a response: %+v", resp)
	}
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	s := New(Options{})
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 7, Method: "resources/list"})

	if resp == nil || resp.Error == nil {
		t.Fatal("expected error response")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("code: got %d, want -32601", resp.Error.Code)
	}
	if !strings.Contains(resp.Error.Message, "resources/list") {
		t.Errorf("message should name the method: %s", resp.Error.Message)
	}
}

func TestServe(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":3,"method":"bogus"}`,
	}, "\n")

	var out strings.Builder
	s := New(Options{})
	if err := s.Serve(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	var responses []MCPResponse
	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	for scanner.Scan() {
		var resp MCPResponse
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			t.Fatalf("bad response line %q: %v", scanner.Text(), err)
		}
		responses = append(responses, resp)
	}

	if len(responses) != 3 {
		t.Fatalf("got %d responses, want 3:\n%s", len(responses), out.String())
	}
	wantIDs := []float64{1, 2, 3}
	for i, resp := range responses {
		if resp.ID != wantIDs[i] {
			t.Errorf("response %d: ID %v, want %v", i, resp.ID, wantIDs[i])
		}
	}
	if responses[2].Error == nil || responses[2].Error.Code != -32601 {
		t.Errorf("last response should be method-not-found: %+v", responses[2])
	}
}
