package fieldcheck

import (
	"mime/multipart"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AsRule adapts a check chain into an ozzo-validation rule, so the same
// checks can guard a struct field:
//
//	validation.ValidateStruct(&form,
//	    validation.Field(&form.Email, fieldcheck.AsRule("correo", func(f *fieldcheck.Field) {
//	        f.Required().Pattern("email")
//	    })),
//	)
//
// File, *File and *multipart.FileHeader values are checked as uploads.
// Configuration errors surface as [validation.InternalError].
func AsRule(name string, checks func(*Field), opts ...Option) validation.Rule {
	return validation.By(func(value any) error {
		f := New(opts...).Name(name)
		switch v := value.(type) {
		case File:
			f.File(v)
		case *File:
			if v == nil {
				f.File(File{Error: UploadNoFile})
			} else {
				f.File(*v)
			}
		case *multipart.FileHeader:
			f.File(FileFromHeader(v))
		default:
			f.Value(value)
		}
		checks(f)

		if err := f.Err(); err != nil {
			return validation.NewInternalError(err)
		}
		if f.IsSuccess() {
			return nil
		}
		return f.Failures()
	})
}
