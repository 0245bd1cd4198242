// Command example demonstrates fieldcheck on an HTML form with a file
// upload.
//
// Run:
//
//	go run ./_example
//
// Then open http://localhost:8080/ in your browser.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/Gobd/fieldcheck"
)

const form = `<form method="post" enctype="multipart/form-data">
<input name="nombre" placeholder="nombre">
<input name="correo" placeholder="correo">
<input name="edad" placeholder="edad">
<input type="file" name="cv">
<button>Enviar</button>
</form>`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.Method != http.MethodPost {
			fmt.Fprint(w, form)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, 8<<20)
		cv, err := fieldcheck.FileFromRequest(r, "cv")
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		f := fieldcheck.New(fieldcheck.WithLogger(logger)).
			Name("nombre").Value(r.FormValue("nombre")).Required().Pattern("words").Max(80).
			Name("correo").Value(r.FormValue("correo")).Required().Pattern("email").
			Name("edad").Value(r.FormValue("edad")).Pattern("int").
			Name("cv").File(cv).Required().MaxSize(2 << 20).Ext("pdf")

		if !f.IsSuccess() {
			w.WriteHeader(http.StatusUnprocessableEntity)
			fmt.Fprint(w, f.DisplayErrors(), form)
			return
		}
		fmt.Fprintf(w, "<p>Gracias, %s.</p>", f.Purify(r.FormValue("nombre")))
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
