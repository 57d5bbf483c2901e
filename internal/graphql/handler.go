package graphql

import (
	"log/slog"
	"net/http"

	"gqlgate/internal/gqlhttp"
	"gqlgate/internal/storage"
)

// Options controls the HTTP behavior of the task API handler.
type Options struct {
	Pretty   bool
	GraphiQL bool
}

// NewHandler creates the GraphQL HTTP handler for the task API
func NewHandler(store storage.Store, opts Options, logger *slog.Logger) (http.Handler, error) {
	schema, err := NewSchema(store, logger)
	if err != nil {
		return nil, err
	}

	return gqlhttp.New(gqlhttp.Config{
		Schema:   &schema.schema,
		Pretty:   opts.Pretty,
		GraphiQL: opts.GraphiQL,
		Logger:   logger,
	})
}
