package lambda

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// GroupsClaim is the authorizer claim that carries the caller's user pool groups
const GroupsClaim = "cognito:groups"

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string                 `json:"method"`
	Path        string                 `json:"path"`
	Headers     map[string]string      `json:"headers"`
	QueryParams map[string]string      `json:"query_params"`
	Body        []byte                 `json:"body"`
	PathParams  map[string]string      `json:"path_params"`
	Claims      map[string]interface{} `json:"claims,omitempty"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// FromAPIGateway converts an API Gateway proxy event into a generic request.
// Authorizer claims are copied when present.
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	req := &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
	}

	if claims, ok := event.RequestContext.Authorizer["claims"].(map[string]interface{}); ok {
		req.Claims = claims
	}

	return req
}

// ToAPIGateway converts the response into an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

// HasQueryParam reports whether the query string carries name, even if empty
func (r *Request) HasQueryParam(name string) bool {
	if r.QueryParams == nil {
		return false
	}
	_, ok := r.QueryParams[name]
	return ok
}

// HasGroup reports whether the caller's groups claim contains group. API
// Gateway delivers the claim either as a list or as a flattened string such
// as "[admins editors]", so both shapes are accepted.
func (r *Request) HasGroup(group string) bool {
	if r.Claims == nil {
		return false
	}

	switch groups := r.Claims[GroupsClaim].(type) {
	case string:
		return strings.Contains(groups, group)
	case []string:
		for _, g := range groups {
			if g == group {
				return true
			}
		}
	case []interface{}:
		for _, g := range groups {
			if fmt.Sprint(g) == group {
				return true
			}
		}
	}

	return false
}

// JSONResponse builds a response with a JSON body and the Content-Type header set
func JSONResponse(statusCode int, v interface{}) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}
