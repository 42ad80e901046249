package service

import "mime/multipart"

// BlobStore is the slice of the storage layer the services need. Satisfied
// by *storage.Store.
type BlobStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(webPath string) error
}
