package handler

import (
	"bytes"
	"context"

	"github.com/pkordes/travel-tracker/internal/handler/gen"
	"github.com/pkordes/travel-tracker/openapi"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetOpenAPI handles GET /openapi.yaml with the document the routes were generated from.
func (s *Server) GetOpenAPI(_ context.Context, _ gen.GetOpenAPIRequestObject) (gen.GetOpenAPIResponseObject, error) {
	return gen.GetOpenAPI200ApplicationyamlResponse{
		Body:          bytes.NewReader(openapi.Document),
		ContentLength: int64(len(openapi.Document)),
	}, nil
}
