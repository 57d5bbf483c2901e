package gqlhttp

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/graphql-go/graphql"
)

// graphiqlVersion pins the GraphiQL assets loaded from the CDN.
const graphiqlVersion = "1.4.7"

type graphiqlData struct {
	Version       string
	Endpoint      string
	Query         string
	Variables     string
	OperationName string
	Result        string
}

// renderGraphiQL serves the interactive editor, pre-filled with the request's
// operation and, when one was executed, its result.
func (h *Handler) renderGraphiQL(w http.ResponseWriter, r *http.Request, params *requestParams, result *graphql.Result) {
	data := graphiqlData{
		Version:       graphiqlVersion,
		Endpoint:      r.URL.Path,
		Query:         params.Query,
		OperationName: params.OperationName,
	}

	if params.Variables != nil {
		if b, err := json.MarshalIndent(params.Variables, "", "  "); err == nil {
			data.Variables = string(b)
		}
	}
	if result != nil {
		if b, err := json.MarshalIndent(result, "", "  "); err == nil {
			data.Result = string(b)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := graphiqlTemplate.Execute(w, data); err != nil {
		h.logger.Error("failed to render graphiql", "error", err)
	}
}

// GraphiQLHandler returns a standalone handler serving the editor pointed at
// the given GraphQL endpoint, for mounting on a path of its own. Query
// parameters (query, variables, operationName) pre-fill the editor.
func GraphiQLHandler(endpoint string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.Method == http.MethodHead {
			return
		}

		q := r.URL.Query()
		data := graphiqlData{
			Version:       graphiqlVersion,
			Endpoint:      endpoint,
			Query:         q.Get("query"),
			Variables:     q.Get("variables"),
			OperationName: q.Get("operationName"),
		}
		_ = graphiqlTemplate.Execute(w, data)
	})
}

// The page loads GraphiQL from the unpkg CDN rather than bundling assets.
// Initial editor state is injected as JSON so it survives any content.
var graphiqlTemplate = template.Must(template.New("graphiql").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <title>GraphiQL</title>
  <style>
    body { height: 100%; margin: 0; width: 100%; overflow: hidden; }
    #graphiql { height: 100vh; }
  </style>
  <link rel="stylesheet" href="https://unpkg.com/graphiql@{{.Version}}/graphiql.min.css" />
  <script src="https://unpkg.com/react@16.14.0/umd/react.production.min.js"></script>
  <script src="https://unpkg.com/react-dom@16.14.0/umd/react-dom.production.min.js"></script>
  <script src="https://unpkg.com/graphiql@{{.Version}}/graphiql.min.js"></script>
</head>
<body>
  <div id="graphiql">Loading...</div>
  <script>
    var endpoint = {{.Endpoint}};

    function graphQLFetcher(graphQLParams) {
      return fetch(endpoint, {
        method: 'post',
        headers: {
          'Accept': 'application/json',
          'Content-Type': 'application/json',
        },
        body: JSON.stringify(graphQLParams),
        credentials: 'same-origin',
      }).then(function (response) {
        return response.json().catch(function () {
          return response.text();
        });
      });
    }

    ReactDOM.render(
      React.createElement(GraphiQL, {
        fetcher: graphQLFetcher,
        query: {{.Query}},
        variables: {{.Variables}},
        operationName: {{.OperationName}},
        response: {{.Result}},
      }),
      document.getElementById('graphiql')
    );
  </script>
</body>
</html>
`))
