package openapi

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

var index = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
window.ui = SwaggerUIBundle({url: "docs.json", dom_id: "#swagger-ui"});
</script>
</body>
</html>
`))

// SwaggerHandler returns an http.Handler that serves Swagger UI for doc at
// its root and the document itself at docs.json. The prefix is stripped
// automatically, so just mount it:
//
//	http.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", doc))
func SwaggerHandler(prefix string, doc *openapi3.T) (http.Handler, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := index.Execute(&buf, doc.Info); err != nil {
		return nil, err
	}
	page := buf.Bytes()

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "", "/":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(page)
		case "docs.json", "/docs.json":
			w.Header().Set("Content-Type", mimeJSON)
			_, _ = w.Write(specJSON)
		default:
			http.NotFound(w, r)
		}
	})), nil
}

// SwaggerHandlerMust is like SwaggerHandler but panics on error.
func SwaggerHandlerMust(prefix string, doc *openapi3.T) http.Handler {
	h, err := SwaggerHandler(prefix, doc)
	if err != nil {
		panic(err)
	}
	return h
}
