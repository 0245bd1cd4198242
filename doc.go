// Package fieldcheck validates one named form value or uploaded file at a
// time with a chain of checks that collect human readable messages.
//
//	f := fieldcheck.New().
//	    Name("edad").Value(r.FormValue("age")).Required().Pattern("int").
//	    Name("cv").File(cv).Required().MaxSize(2 << 20).Ext("pdf")
//	if !f.IsSuccess() {
//	    fmt.Fprint(w, f.DisplayErrors())
//	}
//
// Checks never stop the chain: every configured check runs and failures are
// appended in call order. Named patterns come from a table ([DefaultPatterns])
// that callers extend with [WithPatterns]; messages are Spanish by default
// and replaceable with [WithMessages] or [LoadMessages].
//
// [Field.Schema] describes the applied checks as an OpenAPI schema, and
// [AsRule] plugs a chain into ozzo-validation struct validation.
//
// Sub-packages:
//   - is – standalone type predicates (IsInteger, IsEmail, ...)
//   - transform – HTML purification and struct string transformation
//   - openapi – OpenAPI documents and Swagger UI for form endpoints
package fieldcheck
