package openapi

import (
	"errors"
	"maps"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/Gobd/fieldcheck"
)

const (
	mimeMultipart = "multipart/form-data"
	mimeForm      = "application/x-www-form-urlencoded"
	mimeJSON      = "application/json"
)

// Response describes an HTTP response with a description and body types for schema generation.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single form operation for the helpers [Get], [Post],
// [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Form        *fieldcheck.Field   // request body, described by Form.Schema
	Response    any                 // single 200 response type (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// NewFormRequest builds a request body from the checks configured on f.
// Forms with a file field are multipart, others url-encoded.
func NewFormRequest(f *fieldcheck.Field) (*openapi3.RequestBodyRef, error) {
	if f == nil {
		return nil, errors.New("no form given")
	}
	schema := f.Schema()

	mime := mimeForm
	for _, p := range schema.Properties {
		if p != nil && p.Value != nil && p.Value.Format == "binary" {
			mime = mimeMultipart
			break
		}
	}

	body := openapi3.NewRequestBody().
		WithRequired(len(schema.Required) > 0).
		WithContent(openapi3.Content{
			mime: openapi3.NewMediaType().WithSchema(schema),
		})
	return &openapi3.RequestBodyRef{Value: body}, nil
}

// NewFormRequestMust is like [NewFormRequest] but panics on error.
func NewFormRequestMust(f *fieldcheck.Field) *openapi3.RequestBodyRef {
	o, err := NewFormRequest(f)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	g := openapi3gen.NewGenerator()
	opts := make([]openapi3.NewResponsesOption, 0, len(vs))

	for statusCode := range vs {
		desc := vs[statusCode].Desc

		var refs openapi3.SchemaRefs
		for _, body := range vs[statusCode].Bodies {
			schema, err := g.NewSchemaRefForValue(body, nil)
			if err != nil {
				return nil, err
			}
			refs = append(refs, schema)
		}

		resp := &openapi3.Response{Description: &desc}
		switch len(refs) {
		case 0:
		case 1:
			resp.Content = openapi3.NewContentWithJSONSchemaRef(refs[0])
		default:
			resp.Content = openapi3.NewContentWithJSONSchema(&openapi3.Schema{OneOf: refs})
		}
		opts = append(opts, openapi3.WithName(statusCode, resp))
	}

	return openapi3.NewResponses(opts...), nil
}

// NewResponseMust is like [NewResponse] but panics on error.
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the document at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(method, op)
	s.Paths.Set(path, p)
}

func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	responses := maps.Clone(ep.Responses)
	if responses == nil {
		responses = map[string]Response{"200": {Desc: "OK"}}
		if ep.Response != nil {
			responses["200"] = Response{Desc: "OK", Bodies: []any{ep.Response}}
		}
	}

	if ep.Form != nil {
		op.RequestBody = NewFormRequestMust(ep.Form)
		if _, ok := responses["422"]; !ok {
			responses["422"] = Response{Desc: "Validation failed", Bodies: []any{fieldcheck.Errors{}}}
		}
	}

	op.Responses = NewResponseMust(responses)
	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
