// Package api holds the HTTP contract: the OpenAPI document, the types generated from it,
// and the response envelope every handler writes.
package api

//go:generate go tool oapi-codegen -config oapi-codegen.yaml openapi.yaml
