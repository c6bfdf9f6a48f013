package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/tinyurl/internal/ratelimit"
)

// RegisterRoutes registers the short URL and user routes with
// per-endpoint rate limit configuration.
func RegisterRoutes(api huma.API, tiny *TinyHandler, users *UserHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-tiny",
		Method:        http.MethodPost,
		Path:          "/tiny",
		Summary:       "Create short URL",
		Description:   "Allocates a short code for a long URL, optionally owned by a user for click analytics.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusCreated,
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 30},
					{Window: time.Hour, Max: 500},
				},
			},
		},
	}, tiny.CreateTiny)

	huma.Register(api, huma.Operation{
		OperationID: "redirect",
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Redirect to original URL",
		Description: "Redirects to the original URL associated with the short code.",
		Tags:        []string{"URLs"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 1000},
				},
			},
		},
	}, tiny.Redirect)

	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/user",
		Summary:       "Create user",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 10},
				},
			},
		},
	}, users.CreateUser)

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/user/{name}",
		Summary:     "Fetch user",
		Tags:        []string{"Users"},
	}, users.GetUser)

	huma.Register(api, huma.Operation{
		OperationID: "list-user-clicks",
		Method:      http.MethodGet,
		Path:        "/user/{name}/clicks",
		Summary:     "List a user's click history",
		Tags:        []string{"Users"},
	}, users.ListClicks)
}

// RegisterDebugRoutes registers the raw key-value routes.
func RegisterDebugRoutes(api huma.API, debug *DebugHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "debug-get-key",
		Method:      http.MethodGet,
		Path:        "/debug/kv/{key}",
		Summary:     "Read a raw key-value entry",
		Tags:        []string{"Debug"},
	}, debug.GetKey)

	huma.Register(api, huma.Operation{
		OperationID: "debug-set-key",
		Method:      http.MethodPut,
		Path:        "/debug/kv/{key}",
		Summary:     "Write a raw key-value entry",
		Tags:        []string{"Debug"},
	}, debug.SetKey)
}
