// Package openapi embeds the OpenAPI description of the Travel Tracker API.
// The HTTP server serves it at /openapi.yaml, and internal/handler/gen is
// generated from the same file, so the served document and the routes agree.
package openapi

import _ "embed"

// Document contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var Document []byte
