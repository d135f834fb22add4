package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"space-finder-api/internal/hello"
	"space-finder-api/internal/middleware"
	"space-finder-api/pkg/lambda"
)

// LambdaHandler is the signature shared by the Lambda-compatible handlers
type LambdaHandler func(ctx context.Context, req *lambda.Request) (*lambda.Response, error)

// Gin adapts a Lambda-compatible handler so the local server runs the same code path
func Gin(handler LambdaHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := RequestFromGin(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
			return
		}

		resp, err := handler(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal Server Error"})
			return
		}

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
	}
}

// HelloGin serves the hello handler over gin by rebuilding an API Gateway style event
func HelloGin(h *hello.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := RequestFromGin(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
			return
		}

		resp, err := h.Handle(c.Request.Context(), helloEvent(req))
		if err != nil {
			c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal Server Error"})
			return
		}

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Data(resp.StatusCode, resp.Headers["Content-Type"], []byte(resp.Body))
	}
}

// RequestFromGin converts a gin request into a generic request. Claims set
// by middleware.Authentication are carried over.
func RequestFromGin(c *gin.Context) (*lambda.Request, error) {
	var body []byte
	if c.Request.Body != nil {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
		body = b
	}

	req := &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     firstValues(c.Request.Header),
		QueryParams: firstValues(c.Request.URL.Query()),
		Body:        body,
		PathParams:  make(map[string]string, len(c.Params)),
	}

	for _, p := range c.Params {
		req.PathParams[p.Key] = p.Value
	}

	if v, ok := c.Get(middleware.ClaimsKey); ok {
		if claims, ok := v.(map[string]interface{}); ok {
			req.Claims = claims
		}
	}

	return req, nil
}

// helloEvent mirrors the proxy event fields the hello handler reads. An
// empty query string becomes null, as API Gateway sends it.
func helloEvent(req *lambda.Request) map[string]interface{} {
	event := map[string]interface{}{
		"httpMethod":            req.Method,
		"path":                  req.Path,
		"headers":               req.Headers,
		"queryStringParameters": nil,
		"body":                  nil,
	}

	if len(req.QueryParams) > 0 {
		params := make(map[string]interface{}, len(req.QueryParams))
		for k, v := range req.QueryParams {
			params[k] = v
		}
		event["queryStringParameters"] = params
	}

	if len(req.Body) > 0 {
		event["body"] = string(req.Body)
	}

	return event
}

func firstValues(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
