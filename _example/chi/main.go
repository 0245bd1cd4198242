// Command chi demonstrates fieldcheck rules inside ozzo-validation struct
// validation behind a chi router, returning errors as JSON.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then POST a form to http://localhost:8080/signup.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Gobd/fieldcheck"
	"github.com/Gobd/fieldcheck/is"
	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Signup struct {
	Name   string          `json:"nombre"`
	Email  string          `json:"correo"`
	Active string          `json:"activo"`
	CV     fieldcheck.File `json:"cv"`
}

func (s *Signup) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, fieldcheck.AsRule("nombre", func(f *fieldcheck.Field) {
			f.Required().Pattern("words").Max(80)
		})),
		validation.Field(&s.Email, validation.Required, is.Email),
		validation.Field(&s.Active, is.Bool),
		validation.Field(&s.CV, fieldcheck.AsRule("cv", func(f *fieldcheck.Field) {
			f.Required().MaxSize(2 << 20).Ext("pdf")
		})),
	)
}

type ErrorResponse struct {
	Errors fieldcheck.ValidationErrors `json:"errors"`
}

func main() {
	r := chi.NewRouter()

	r.Post("/signup", func(w http.ResponseWriter, r *http.Request) {
		cv, err := fieldcheck.FileFromRequest(r, "cv")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s := Signup{
			Name:   r.FormValue("nombre"),
			Email:  r.FormValue("correo"),
			Active: r.FormValue("activo"),
			CV:     cv,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := s.Validate(); err != nil {
			errs, ok := err.(validation.Errors)
			if !ok {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Errors: errs})
			return
		}
		_ = json.NewEncoder(w).Encode(s)
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
