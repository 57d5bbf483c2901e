// Package gqlhttp adapts a graphql-go schema to net/http. It parses GraphQL
// operations out of HTTP requests (query string, JSON, form or raw bodies),
// hands them to the execution engine, and writes the engine result back as
// JSON. It can also serve the GraphiQL in-browser editor for interactive use.
package gqlhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"
)

// Executor runs a parsed GraphQL request against a schema. The default is
// graphql.Do; tests and callers with custom execution strategies may swap it.
type Executor func(p graphql.Params) *graphql.Result

// RootValueResolver supplies the root object passed to the engine for each
// request. Implementations can derive per-request values, e.g. the
// authenticated user.
type RootValueResolver interface {
	RootValue(r *http.Request) map[string]interface{}
}

// RootValueFunc adapts a function to the RootValueResolver interface.
type RootValueFunc func(r *http.Request) map[string]interface{}

func (f RootValueFunc) RootValue(r *http.Request) map[string]interface{} {
	return f(r)
}

// StaticRootValue returns a resolver that hands the same root object to
// every request.
func StaticRootValue(root map[string]interface{}) RootValueResolver {
	return RootValueFunc(func(*http.Request) map[string]interface{} {
		return root
	})
}

// Config holds the handler configuration. It is read-only once the handler
// is constructed, so a single handler is safe for concurrent requests.
type Config struct {
	// Schema is the externally built schema to execute against. Required.
	Schema *graphql.Schema

	// Pretty indent-formats JSON responses. Clients may also request this
	// per call with the `pretty` query parameter.
	Pretty bool

	// GraphiQL serves the interactive editor to clients that prefer HTML.
	GraphiQL bool

	// RootValue resolves the root object for each request. Nil means no
	// root object.
	RootValue RootValueResolver

	// ContextFunc derives the execution context from the request. Nil means
	// the request's own context is used.
	ContextFunc func(r *http.Request) context.Context

	// Executor runs the request. Nil means graphql.Do.
	Executor Executor

	// Logger is used for request-level diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// Handler serves GraphQL over HTTP for a single schema.
type Handler struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Handler from the given configuration.
func New(cfg Config) (*Handler, error) {
	if cfg.Schema == nil {
		return nil, fmt.Errorf("gqlhttp: a schema is required")
	}
	if cfg.Executor == nil {
		cfg.Executor = graphql.Do
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{cfg: cfg, logger: logger}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		h.writeErrors(w, r, http.StatusMethodNotAllowed, "GraphQL only supports GET and POST requests.")
		return
	}

	params, herr := parseRequest(r)
	if herr != nil {
		h.writeErrors(w, r, herr.status, herr.message)
		return
	}

	showGraphiQL := h.cfg.GraphiQL && !params.raw && prefersHTML(r)

	if params.Query == "" {
		if showGraphiQL {
			h.renderGraphiQL(w, r, params, nil)
			return
		}
		h.writeErrors(w, r, http.StatusBadRequest, "Must provide query string.")
		return
	}

	// Anything other than a plain query over GET must go through POST, so
	// that side effects never ride on a cacheable method.
	if r.Method == http.MethodGet {
		if op := operationKind(params.Query, params.OperationName); op != "" && op != ast.OperationTypeQuery {
			if showGraphiQL {
				h.renderGraphiQL(w, r, params, nil)
				return
			}
			w.Header().Set("Allow", "POST")
			h.writeErrors(w, r, http.StatusMethodNotAllowed,
				fmt.Sprintf("Can only perform a %s operation from a POST request.", op))
			return
		}
	}

	result := h.execute(r, params)

	if showGraphiQL {
		h.renderGraphiQL(w, r, params, result)
		return
	}

	status := http.StatusOK
	if result.HasErrors() && result.Data == nil {
		status = http.StatusBadRequest
	}
	h.writeJSON(w, r, status, result)
}

// execute invokes the configured executor with the extracted request
// parameters. Engine errors (syntax, validation, resolver failures) come
// back inside the result and are never turned into Go errors here.
func (h *Handler) execute(r *http.Request, params *requestParams) *graphql.Result {
	ctx := r.Context()
	if h.cfg.ContextFunc != nil {
		ctx = h.cfg.ContextFunc(r)
	}

	var root map[string]interface{}
	if h.cfg.RootValue != nil {
		root = h.cfg.RootValue.RootValue(r)
	}

	h.logger.Debug("executing graphql request",
		"operation", params.OperationName,
		"method", r.Method,
	)

	return h.cfg.Executor(graphql.Params{
		Schema:         *h.cfg.Schema,
		RequestString:  params.Query,
		VariableValues: params.Variables,
		OperationName:  params.OperationName,
		RootObject:     root,
		Context:        ctx,
	})
}

// operationKind parses the query just far enough to find the kind of the
// requested operation ("query", "mutation", "subscription"). It returns ""
// when the document does not parse; execution will surface the syntax error
// with a proper errors payload.
func operationKind(query, operationName string) string {
	doc, err := parser.Parse(parser.ParseParams{
		Source: source.NewSource(&source.Source{
			Body: []byte(query),
			Name: "GraphQL request",
		}),
	})
	if err != nil {
		return ""
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if operationName == "" {
			return op.Operation
		}
		if op.Name != nil && op.Name.Value == operationName {
			return op.Operation
		}
	}
	return ""
}

// writeJSON marshals v and writes it with the given status. Encoding is done
// up front so a marshal failure can still produce a clean 500.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	payload, err := h.encode(r, v)
	if err != nil {
		h.logger.Error("failed to encode graphql response", "error", err)
		http.Error(w, `{"errors":[{"message":"Internal server error"}]}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		h.logger.Error("failed to write graphql response", "error", err)
	}
}

func (h *Handler) writeErrors(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.writeJSON(w, r, status, map[string]interface{}{
		"errors": []gqlerrors.FormattedError{{Message: message}},
	})
}

// encode marshals v, pretty-printed when the handler or the request asks
// for it.
func (h *Handler) encode(r *http.Request, v interface{}) ([]byte, error) {
	if h.cfg.Pretty || truthyParam(r.URL.Query().Get("pretty")) {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func truthyParam(v string) bool {
	return v != "" && v != "0" && v != "false"
}
