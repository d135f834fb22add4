package hello

// ResponseBody is the JSON document returned by the hello function
type ResponseBody struct {
	Message   string    `json:"message"`
	TableName string    `json:"table_name"`
	Runtime   string    `json:"runtime"`
	EventInfo EventInfo `json:"event_info"`
}

// EventInfo summarizes the inbound request. Present values are echoed
// unchanged, whatever their JSON type.
type EventInfo struct {
	HTTPMethod  interface{} `json:"http_method"`
	Path        interface{} `json:"path"`
	QueryParams interface{} `json:"query_params"`
}

// NewEventInfo extracts the request summary from a raw event, substituting
// "Unknown" for a missing method or path and {} for absent or null query
// parameters.
func NewEventInfo(event map[string]interface{}) EventInfo {
	return EventInfo{
		HTTPMethod:  valueOr(event, "httpMethod", unknown),
		Path:        valueOr(event, "path", unknown),
		QueryParams: valueOr(event, "queryStringParameters", map[string]interface{}{}),
	}
}

func valueOr(event map[string]interface{}, key string, fallback interface{}) interface{} {
	v, ok := event[key]
	if !ok || v == nil {
		return fallback
	}
	switch m := v.(type) {
	case map[string]interface{}:
		if m == nil {
			return fallback
		}
	case map[string]string:
		if m == nil {
			return fallback
		}
	}
	return v
}

// ResponseHeaders returns the fixed CORS headers sent with every response
func ResponseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization",
	}
}
