package ports

import "io"

// Port: boundary for storing uploaded proof-of-collection images.
type PhotoStore interface {
	// Save writes the upload under the given folder and returns the stored
	// path relative to the store root. It validates content type and size.
	Save(folder, originalFilename, contentType string, r io.Reader) (string, error)
	// Delete removes a previously stored file; missing files are not an error.
	Delete(relPath string) error
}
