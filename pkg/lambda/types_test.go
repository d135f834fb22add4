package lambda

import (
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func TestFromAPIGateway(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:            "DELETE",
		Path:                  "/spaces",
		QueryStringParameters: map[string]string{"id": "abc"},
		Body:                  `{"a":1}`,
		RequestContext: events.APIGatewayProxyRequestContext{
			Authorizer: map[string]interface{}{
				"claims": map[string]interface{}{GroupsClaim: "[admins]"},
			},
		},
	}

	req := FromAPIGateway(event)
	if req.Method != "DELETE" || req.Path != "/spaces" {
		t.Errorf("Unexpected method/path: %s %s", req.Method, req.Path)
	}
	if string(req.Body) != `{"a":1}` {
		t.Errorf("Body = %q", req.Body)
	}
	if !req.HasQueryParam("id") || req.HasQueryParam("other") {
		t.Error("HasQueryParam mismatch")
	}
	if !req.HasGroup("admins") {
		t.Error("Expected caller to be in admins")
	}
}

func TestRequest_HasGroup(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]interface{}
		want   bool
	}{
		{"no claims", nil, false},
		{"no groups claim", map[string]interface{}{"sub": "x"}, false},
		{"string claim", map[string]interface{}{GroupsClaim: "admins"}, true},
		{"string claim without group", map[string]interface{}{GroupsClaim: "[editors]"}, false},
		{"string slice", map[string]interface{}{GroupsClaim: []string{"editors", "admins"}}, true},
		{"interface slice", map[string]interface{}{GroupsClaim: []interface{}{"admins"}}, true},
		{"interface slice without group", map[string]interface{}{GroupsClaim: []interface{}{"editors"}}, false},
		{"unexpected type", map[string]interface{}{GroupsClaim: 42}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{Claims: tt.claims}
			if got := req.HasGroup("admins"); got != tt.want {
				t.Errorf("HasGroup() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResponse_ToAPIGateway(t *testing.T) {
	resp, err := JSONResponse(201, map[string]string{"message": "ok"})
	if err != nil {
		t.Fatalf("JSONResponse() failed: %v", err)
	}

	out := resp.ToAPIGateway()
	if out.StatusCode != 201 {
		t.Errorf("StatusCode = %d", out.StatusCode)
	}
	if out.Headers["Content-Type"] != "application/json" {
		t.Errorf("Content-Type = %q", out.Headers["Content-Type"])
	}
	if out.Body != `{"message":"ok"}` {
		t.Errorf("Body = %q", out.Body)
	}

	if _, err := JSONResponse(200, make(chan int)); err == nil {
		t.Error("Expected marshal error")
	}
}
