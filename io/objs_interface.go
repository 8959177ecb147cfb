package io

import (
	"context"
	"io"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListObjectsFunc is a callback used by Storage.ListObjects(...) function
// for consuming listed object names
type ListObjectsFunc func(path string, size int64, created time.Time) (err error)

// ErrStopListing should be returned by ListObjectsFunc in case user wants
// to stop listing procedure (Storage.ListObjects should return immediately)
var ErrStopListing = errors.New("")

// Storage describes abstract storage for record files
type Storage interface {
	// ListObjects calls specified handler function for each object named {path}/{name},
	// where {name} does not contain "/" delimiter.
	// If specified list function `fn` returns ErrStopListing or other error, listing process is terminated
	ListObjects(ctx context.Context, path string, fn ListObjectsFunc) (err error)
	// OpenObject opens object for reading, ErrObjNotFound is returned for missing objects
	OpenObject(ctx context.Context, path string) (io.ReadCloser, error)
	NewWriteObject(path string) (WriteObject, error)

	DeleteObject(ctx context.Context, path string) error // object-not-found errors are suppressed

	Log() *logrus.Logger
}

// WriteObject represents storage object to be used for writing.
// Readers never observe partially written object.
type WriteObject interface {
	Write(ctx context.Context, data io.Reader) error
	// WriteChunked writes an object part by part so that maximum
	// number of object bytes transferred at once is equal to chunkSize
	WriteChunked(ctx context.Context, data io.Reader, chunkSize int) (err error)
}

// ReadObject reads the whole object
func ReadObject(ctx context.Context, storage Storage, path string) (data []byte, err error) {
	r, err := storage.OpenObject(ctx, path)
	if err != nil {
		return nil, err
	}
	data, err = ioutil.ReadAll(r)
	if errClose := r.Close(); err == nil {
		err = errClose
	}
	return
}
