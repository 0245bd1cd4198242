package fieldcheck

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// Upload status codes carried by [File.Error].
const (
	UploadOK        = 0
	UploadIniSize   = 1 // exceeds the server-side size limit
	UploadFormSize  = 2 // exceeds the form's declared size limit
	UploadPartial   = 3
	UploadNoFile    = 4
	UploadNoTmpDir  = 6
	UploadCantWrite = 7
	UploadExtension = 8
)

// File describes an uploaded file. It is owned by the caller and only read
// by the checks.
type File struct {
	Name  string // original file name
	Size  int64  // bytes
	Error int    // upload status, see UploadOK and friends
}

// Present reports whether a file was actually uploaded.
func (f File) Present() bool {
	return f.Error != UploadNoFile
}

// Ext returns the file extension without the leading dot.
func (f File) Ext() string {
	return strings.TrimPrefix(filepath.Ext(f.Name), ".")
}

// FileFromHeader builds a descriptor from a multipart file header.
// A nil header describes a missing upload.
func FileFromHeader(fh *multipart.FileHeader) File {
	if fh == nil {
		return File{Error: UploadNoFile}
	}
	if fh.Filename == "" && fh.Size == 0 {
		return File{Error: UploadNoFile}
	}
	return File{
		Name: filepath.Base(fh.Filename),
		Size: fh.Size,
	}
}

// FileFromRequest reads the file part key from a multipart request.
// A missing part yields a descriptor with UploadNoFile and a nil error;
// a body over the request's size limit yields UploadIniSize.
func FileFromRequest(r *http.Request, key string) (File, error) {
	f, fh, err := r.FormFile(key)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return File{Error: UploadNoFile}, nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return File{Error: UploadIniSize}, nil
		}
		return File{}, err
	}
	_ = f.Close()
	return FileFromHeader(fh), nil
}
