// Package gen holds the server interfaces and models generated from
// openapi/openapi.yaml. Do not edit api.gen.go; change the document and
// run go generate instead.
package gen

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=oapi-codegen.yaml ../../../openapi/openapi.yaml
