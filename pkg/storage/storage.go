// Package storage abstracts where uploaded artwork images live.
//
// Two drivers are available:
//   - "local": files under a directory on disk, served statically (default)
//   - "s3": S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
package storage

import (
	"fmt"
	"io"
)

// Disk is the driver interface for stored image assets.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte) error
	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error
	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)
	// Exists reports whether a file exists at path.
	Exists(path string) bool
	// Delete removes a file. Deleting a missing file is not an error.
	Delete(path string) error
	// URL returns the public URL for path.
	URL(path string) string
}

// Open builds the configured disk. driver is "local" or "s3".
func Open(driver string) (Disk, error) {
	switch driver {
	case "local", "":
		return newLocalDisk(), nil
	case "s3":
		return newS3Disk()
	default:
		return nil, fmt.Errorf("storage: unknown driver %q (supported: local, s3)", driver)
	}
}
