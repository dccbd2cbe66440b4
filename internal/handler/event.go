package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"gymcloud/internal/errors"
)

// Event is an inbound request routed to the member service.
type Event struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	// Body is the raw JSON payload; empty means no body.
	Body string `json:"body,omitempty"`
}

// Response is what the member service returns for every event.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// Header names and values sent with every response.
const (
	HeaderContentType  = "Content-Type"
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"

	contentTypeJSON = "application/json"
	allowedMethods  = "GET,POST,PUT,DELETE,OPTIONS"
	allowedHeaders  = "Content-Type,Authorization,X-Amz-Date,X-Api-Key,X-Amz-Security-Token"
)

var repeatedSlashes = regexp.MustCompile(`/+`)

func responseHeaders() map[string]string {
	return map[string]string{
		HeaderContentType:  contentTypeJSON,
		HeaderAllowOrigin:  "*",
		HeaderAllowMethods: allowedMethods,
		HeaderAllowHeaders: allowedHeaders,
	}
}

// NormalizePath collapses repeated separators and strips one trailing
// separator, leaving the root path alone.
func NormalizePath(path string) string {
	path = repeatedSlashes.ReplaceAllString(path, "/")
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}

func jsonResponse(status int, body interface{}) Response {
	payload, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		payload, _ = json.Marshal(errors.ErrorResponse{Error: "internal server error", Details: err.Error()})
	}
	return Response{
		StatusCode: status,
		Headers:    responseHeaders(),
		Body:       string(payload),
	}
}

func errorResponse(httpErr *errors.HTTPError) Response {
	return jsonResponse(httpErr.StatusCode, httpErr.ToErrorResponse())
}
