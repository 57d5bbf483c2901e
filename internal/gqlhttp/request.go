package gqlhttp

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// maxBodySize caps request bodies at 1 MiB. GraphQL documents are text; a
// larger body is almost certainly a mistake or abuse.
const maxBodySize = 1 << 20

// requestParams is a GraphQL operation extracted from an HTTP request. It is
// derived once per request and not mutated afterwards.
type requestParams struct {
	Query         string
	Variables     map[string]interface{}
	OperationName string

	// raw suppresses the GraphiQL page even for HTML-preferring clients,
	// mirroring the `raw` parameter GraphiQL itself sends.
	raw bool
}

// httpError is a request-level failure that maps onto a status code before
// the engine ever runs.
type httpError struct {
	status  int
	message string
}

// parseRequest extracts the GraphQL parameters from the query string and,
// for POST, the request body. URL query-string values take precedence over
// body values, so a proxy or a bookmark can always pin the operation
// regardless of the payload.
func parseRequest(r *http.Request) (*requestParams, *httpError) {
	params := &requestParams{}

	if r.Method == http.MethodPost {
		if herr := parseBody(r, params); herr != nil {
			return nil, herr
		}
	}

	q := r.URL.Query()
	if v := q.Get("query"); v != "" {
		params.Query = v
	}
	if v := q.Get("operationName"); v != "" {
		params.OperationName = v
	}
	if v := q.Get("variables"); v != "" {
		vars, herr := decodeVariables(v)
		if herr != nil {
			return nil, herr
		}
		params.Variables = vars
	}
	if q.Has("raw") {
		params.raw = true
	}

	return params, nil
}

// parseBody fills params from the POST body according to its media type.
// Unknown media types are ignored rather than rejected; the request may
// still carry everything in the query string.
func parseBody(r *http.Request, params *requestParams) *httpError {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	switch mediaType {
	case "application/graphql":
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			return &httpError{http.StatusBadRequest, "Could not read request body."}
		}
		params.Query = string(body)

	case "application/json":
		var fields struct {
			Query         string          `json:"query"`
			Variables     json.RawMessage `json:"variables"`
			OperationName string          `json:"operationName"`
			Raw           json.RawMessage `json:"raw"`
		}
		body := io.LimitReader(r.Body, maxBodySize)
		if err := json.NewDecoder(body).Decode(&fields); err != nil {
			return &httpError{http.StatusBadRequest, "POST body sent invalid JSON."}
		}
		params.Query = fields.Query
		params.OperationName = fields.OperationName
		params.raw = len(fields.Raw) > 0
		if len(fields.Variables) > 0 {
			vars, herr := decodeRawVariables(fields.Variables)
			if herr != nil {
				return herr
			}
			params.Variables = vars
		}

	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodySize); err != nil {
			if err := r.ParseForm(); err != nil {
				return &httpError{http.StatusBadRequest, "Could not parse form body."}
			}
		}
		params.Query = r.PostFormValue("query")
		params.OperationName = r.PostFormValue("operationName")
		if v := r.PostFormValue("variables"); v != "" {
			vars, herr := decodeVariables(v)
			if herr != nil {
				return herr
			}
			params.Variables = vars
		}
		if _, ok := r.PostForm["raw"]; ok {
			params.raw = true
		}
	}

	return nil
}

// decodeRawVariables accepts variables either as a JSON object or as a JSON
// string containing an encoded object, which is what form posts and some
// clients send.
func decodeRawVariables(raw json.RawMessage) (map[string]interface{}, *httpError) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return decodeVariables(asString)
	}

	var vars map[string]interface{}
	if err := json.Unmarshal(raw, &vars); err != nil {
		return nil, &httpError{http.StatusBadRequest, "Variables are invalid JSON."}
	}
	return vars, nil
}

func decodeVariables(s string) (map[string]interface{}, *httpError) {
	var vars map[string]interface{}
	if err := json.Unmarshal([]byte(s), &vars); err != nil {
		return nil, &httpError{http.StatusBadRequest, "Variables are invalid JSON."}
	}
	return vars, nil
}

// prefersHTML reports whether the client's Accept header ranks text/html
// strictly above application/json. A bare wildcard does not count as an HTML
// preference, so curl and API clients keep getting JSON.
func prefersHTML(r *http.Request) bool {
	htmlQ, jsonQ := -1.0, -1.0

	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		q := 1.0
		if s, ok := params["q"]; ok {
			if parsed, err := strconv.ParseFloat(s, 64); err == nil {
				q = parsed
			}
		}
		switch mediaType {
		case "text/html":
			if q > htmlQ {
				htmlQ = q
			}
		case "application/json":
			if q > jsonQ {
				jsonQ = q
			}
		case "*/*":
			if q > jsonQ {
				jsonQ = q
			}
			if q > htmlQ {
				htmlQ = q
			}
		}
	}

	return htmlQ > jsonQ
}
