// Package openapi documents form endpoints validated with fieldcheck as an
// OpenAPI 3 specification and serves it through Swagger UI.
//
// Use [DocBase] to create a base document, register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete], and serve the UI with
// [SwaggerHandlerMust]. The request body of an endpoint is the schema a
// [fieldcheck.Field] collected while its checks were configured:
//
//	form := fieldcheck.New().
//	    Name("correo").Required().Pattern("email").
//	    Name("cv").File(fieldcheck.File{}).MaxSize(2 << 20).Ext("pdf")
//
//	doc := openapi.DocBase("signup", "Signup form", "1.0")
//	openapi.Post(doc, "/signup", "signup", openapi.Endpoint{Form: form})
//	http.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", doc))
package openapi
