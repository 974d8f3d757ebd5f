package server

import (
	"net/http"
	"strings"
)

// RouteDoc is a self-describing entry for one registered route, served back
// at /api/routes so the form and admin front-ends can discover the API.
type RouteDoc struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Summary     string `json:"summary,omitempty"`
	ExampleBody string `json:"example_body,omitempty"`
}

// RouteRegistry collects RouteDocs as routes are registered.
type RouteRegistry struct {
	routes []RouteDoc
}

func (rr *RouteRegistry) Add(doc RouteDoc) {
	rr.routes = append(rr.routes, doc)
}

func (rr *RouteRegistry) List() []RouteDoc {
	out := make([]RouteDoc, len(rr.routes))
	copy(out, rr.routes)
	return out
}

// Handle registers a handler on the mux and records its doc entry.
// methodAndPattern is a Go 1.22 mux pattern like "POST /api/boards/validate".
func Handle(mux *http.ServeMux, rr *RouteRegistry, methodAndPattern, summary, exampleBody string, h http.HandlerFunc) {
	parts := strings.SplitN(methodAndPattern, " ", 2)
	method, pattern := parts[0], ""
	if len(parts) == 2 {
		pattern = parts[1]
	}
	rr.Add(RouteDoc{Method: method, Pattern: pattern, Summary: summary, ExampleBody: exampleBody})
	mux.HandleFunc(methodAndPattern, h)
}
