package openapi_test

import (
	"fmt"

	"github.com/Gobd/fieldcheck"
	"github.com/Gobd/fieldcheck/openapi"
)

func ExamplePost() {
	form := fieldcheck.New().
		Name("correo").Required().Pattern("email").
		Name("cv").File(fieldcheck.File{}).MaxSize(2 << 20).Ext("pdf")

	doc := openapi.DocBase("Signup API", "Example API", "1.0.0")
	openapi.Post(doc, "/signup", "signup", openapi.Endpoint{
		Summary: "Sign up",
		Form:    form,
	})

	op := doc.Paths.Value("/signup").Post
	fmt.Println(op.OperationID)
	for mime := range op.RequestBody.Value.Content {
		fmt.Println(mime)
	}
	// Output:
	// signup
	// multipart/form-data
}

func ExampleDocBase() {
	doc := openapi.DocBase("My Service", "A cool service", "0.1.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// My Service
	// 3.0.3
}
